package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
)

// Keyword is the deterministic fallback provider. It matches the catalog
// against the input text and assembles tips and an explanation from the
// categories of the matched medicines.
type Keyword struct{}

var genericTips = []string{
	"Maintain a balanced diet",
	"Stay hydrated",
	"Get adequate rest",
}

var standardRecommendations = []string{
	"Take medications as prescribed",
	"Keep track of any side effects",
	"Don't skip doses",
	"Store medications properly",
	"Consult your doctor if you experience severe side effects",
}

func (k *Keyword) Analyze(_ context.Context, text string) ds.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return ds.AnalysisResult{
			Medicines:          []ds.MedicineInfo{},
			Explanation:        "Unable to analyze prescription at this time. Please consult your healthcare provider.",
			NutritionTips:      []string{"Maintain a balanced diet", "Stay hydrated"},
			AnalysisConfidence: 0.0,
			Recommendations:    []string{"Consult your doctor for proper interpretation"},
		}
	}

	medicines := matchMedicines(text)
	tips := categoryTips(medicines)
	explanation := buildExplanation(medicines)

	confidence := 0.3
	if len(medicines) > 0 {
		confidence = 0.85
	}
	if len(medicines) == 0 {
		tips = genericTips
	}
	if medicines == nil {
		medicines = []ds.MedicineInfo{}
	}

	return ds.AnalysisResult{
		Medicines:          medicines,
		Explanation:        explanation,
		NutritionTips:      dedupe(tips),
		AnalysisConfidence: confidence,
		Recommendations:    standardRecommendations,
	}
}

// Category predicates over the matched medicines. Purpose text drives the
// first four, oral care also looks at the product name.
func anyPurpose(meds []ds.MedicineInfo, words ...string) bool {
	for _, m := range meds {
		p := strings.ToLower(m.Purpose)
		for _, w := range words {
			if strings.Contains(p, w) {
				return true
			}
		}
	}
	return false
}

func anyOralCare(meds []ds.MedicineInfo) bool {
	for _, m := range meds {
		n := strings.ToLower(m.Name)
		if strings.Contains(n, "oral") || strings.Contains(n, "gum") || strings.Contains(n, "mouthwash") {
			return true
		}
	}
	return false
}

func categoryTips(meds []ds.MedicineInfo) []string {
	var tips []string
	if anyPurpose(meds, "antibiotic") {
		tips = append(tips,
			"Take antibiotics on empty stomach for better absorption",
			"Complete the full course of antibiotics",
			"Avoid dairy products 2 hours before and after taking antibiotics",
			"Stay hydrated to help flush out bacteria",
		)
	}
	if anyPurpose(meds, "covid", "antiviral") {
		tips = append(tips,
			"Stay well hydrated with water and electrolyte solutions",
			"Eat light, easily digestible foods",
			"Get adequate rest and sleep",
			"Monitor oxygen levels regularly",
			"Avoid alcohol and smoking completely",
			"Take medications exactly as prescribed",
		)
	}
	if anyPurpose(meds, "pain", "fever") {
		tips = append(tips,
			"Take pain relievers with food to avoid stomach upset",
			"Stay hydrated to help reduce fever",
			"Get adequate rest to help recovery",
			"Avoid alcohol while taking pain medications",
		)
	}
	if anyPurpose(meds, "stomach", "acid") {
		tips = append(tips,
			"Take acid reducers 30 minutes before meals",
			"Avoid spicy, acidic, and fried foods",
			"Eat smaller, more frequent meals",
			"Don't lie down immediately after eating",
		)
	}
	if anyOralCare(meds) {
		tips = append(tips,
			"Maintain good oral hygiene",
			"Avoid sugary foods and drinks",
			"Use soft-bristled toothbrush",
			"Rinse mouth after meals",
		)
	}
	return tips
}

func buildExplanation(meds []ds.MedicineInfo) string {
	if len(meds) == 0 {
		return "No common medications detected in your prescription. Please consult with your healthcare provider for proper interpretation."
	}

	names := make([]string, len(meds))
	for i, m := range meds {
		names[i] = m.Name
	}
	var b strings.Builder
	fmt.Fprintf(&b, "This prescription contains %d medication(s): %s. ", len(meds), strings.Join(names, ", "))

	if anyPurpose(meds, "antibiotic") {
		b.WriteString("The antibiotics will help fight bacterial infections. ")
	}
	if anyPurpose(meds, "covid", "antiviral") {
		b.WriteString("The antiviral and immunosuppressive medications are for COVID-19 treatment. ")
	}
	if anyPurpose(meds, "pain", "fever") {
		b.WriteString("Pain relievers will help reduce fever and discomfort. ")
	}
	if anyPurpose(meds, "stomach", "acid") {
		b.WriteString("Acid reducers will protect your stomach lining. ")
	}
	if anyOralCare(meds) {
		b.WriteString("Oral care products will help maintain dental hygiene. ")
	}
	b.WriteString("Follow the prescribed dosage and complete the full course of treatment.")
	return b.String()
}
