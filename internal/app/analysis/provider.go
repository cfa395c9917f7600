// Package analysis turns raw prescription text into a structured
// explanation of the detected medicines. Two providers exist: a
// deterministic keyword matcher over a fixed catalog, and an adapter for
// the Gemini text-generation API that degrades to the keyword matcher on
// any failure. Providers never return an error: the review workflow must
// always have something to persist.
package analysis

import (
	"context"
	"strings"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Analyze(ctx context.Context, text string) ds.AnalysisResult
}

// NewProvider selects the provider variant. A configured Gemini credential
// enables the external adapter, otherwise the keyword fallback is used.
func NewProvider(apiKey, model string) Provider {
	if apiKey == "" {
		log.Info("gemini api key not set, using keyword analysis")
		return &Keyword{}
	}
	log.WithField("model", model).Info("gemini analysis enabled")
	return NewGemini(apiKey, model)
}

// matchMedicines scans text for catalog keywords, case-insensitive and
// substring-based, in catalog order.
func matchMedicines(text string) []ds.MedicineInfo {
	lower := strings.ToLower(text)
	var medicines []ds.MedicineInfo
	for _, entry := range medicineCatalog {
		if strings.Contains(lower, entry.Keyword) {
			medicines = append(medicines, entry.Info)
		}
	}
	return medicines
}

// dedupe removes repeated tips while keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
