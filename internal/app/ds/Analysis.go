package ds

import "encoding/json"

// MedicineInfo describes one detected medication. Entries come from the
// provider's catalog and are never persisted on their own.
type MedicineInfo struct {
	Name         string   `json:"name"`
	Purpose      string   `json:"purpose"`
	Dosage       string   `json:"dosage"`
	Price        string   `json:"price"`
	Alternatives []string `json:"alternatives"`
	FoodToAvoid  []string `json:"foodToAvoid"`
	SideEffects  []string `json:"side_effects"`
}

// AnalysisResult is the structured explanation attached to a prescription.
// It is stored serialized in the analysis_json column.
type AnalysisResult struct {
	Medicines           []MedicineInfo `json:"medicines"`
	Explanation         string         `json:"explanation"`
	NutritionTips       []string       `json:"nutrition_tips"`
	AnalysisConfidence  float64        `json:"analysis_confidence"`
	Recommendations     []string       `json:"recommendations"`
	RawProviderResponse string         `json:"raw_gemini_response,omitempty"`
}

// EncodeAnalysis serializes a result for the text column.
func EncodeAnalysis(a AnalysisResult) string {
	b, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// DecodeAnalysis parses a stored analysis. A row with a corrupt column
// still decodes to a zero result instead of failing the whole listing.
func DecodeAnalysis(raw string) AnalysisResult {
	var a AnalysisResult
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return AnalysisResult{}
	}
	return a
}
