package analysis

import (
	"strings"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
)

// Defaults used when the model answer has no recognizable section.
var defaultAITips = []string{
	"Maintain a balanced diet rich in fruits, vegetables, lean proteins, and whole grains",
	"Stay well-hydrated by drinking plenty of fluids",
	"Get adequate rest and sleep",
	"Avoid alcohol and smoking completely",
}

var defaultAIRecommendations = []string{
	"Take medications as prescribed",
	"Monitor for side effects and allergic reactions",
	"Keep track of any adverse reactions",
	"Consult your doctor if you experience severe side effects",
	"Complete the full course of treatment",
}

// parseResponse converts the model's free-form answer into the structured
// result. Medicines are re-matched against the answer text, tips and
// recommendations are pulled from the "nutrition" and "safety" sections,
// and the explanation is a truncated prefix of the raw answer.
func parseResponse(response string) ds.AnalysisResult {
	lower := strings.ToLower(response)

	medicines := matchMedicines(response)
	if medicines == nil {
		medicines = []ds.MedicineInfo{}
	}

	tips := extractListItems(sectionAfter(lower, "nutrition"))
	if len(tips) == 0 {
		tips = defaultAITips
	}

	recommendations := extractListItems(sectionAfter(lower, "safety"))
	if len(recommendations) == 0 {
		recommendations = defaultAIRecommendations
	}

	// Truncate on runes so a multibyte answer is never cut mid-character
	explanation := "AI Analysis: " + response
	if runes := []rune(response); len(runes) > 200 {
		explanation = "AI Analysis: " + string(runes[:200]) + "..."
	}

	return ds.AnalysisResult{
		Medicines:           medicines,
		Explanation:         explanation,
		NutritionTips:       dedupe(tips),
		AnalysisConfidence:  0.9,
		Recommendations:     recommendations,
		RawProviderResponse: response,
	}
}

// sectionAfter returns the text between the first and second occurrence of
// marker, or everything after the first when there is no second one.
func sectionAfter(text, marker string) string {
	parts := strings.Split(text, marker)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

var markerStripper = strings.NewReplacer("•", "", "-", "", "*", "")

// extractListItems keeps bullet-like lines longer than 10 chars once the
// markers are stripped.
func extractListItems(section string) []string {
	if section == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.Contains(line, "•") && !strings.Contains(line, "-") && !strings.HasPrefix(line, "*") {
			continue
		}
		item := strings.TrimSpace(markerStripper.Replace(line))
		if len(item) > 10 {
			items = append(items, item)
		}
	}
	return items
}
