package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoDuplicates(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, s := range items {
		assert.Falsef(t, seen[s], "duplicate entry: %q", s)
		seen[s] = true
	}
}

func TestKeywordMatchesBrandAndGeneric(t *testing.T) {
	k := &Keyword{}
	result := k.Analyze(context.Background(), "Take Napa 500mg and Sergel 20mg")

	require.Len(t, result.Medicines, 2)
	assert.Equal(t, "Napa (Paracetamol)", result.Medicines[0].Name)
	assert.Equal(t, "Sergel (Omeprazole)", result.Medicines[1].Name)
	assert.Equal(t, 0.85, result.AnalysisConfidence)

	// Pain-relief and acid-reducer tip categories must both be present
	assert.Contains(t, result.NutritionTips, "Take pain relievers with food to avoid stomach upset")
	assert.Contains(t, result.NutritionTips, "Take acid reducers 30 minutes before meals")
	assertNoDuplicates(t, result.NutritionTips)
}

func TestKeywordMatchIsCaseInsensitive(t *testing.T) {
	k := &Keyword{}
	result := k.Analyze(context.Background(), "Patient needs AMOXICILLIN now")

	require.Len(t, result.Medicines, 1)
	assert.Equal(t, "Amoxicillin", result.Medicines[0].Name)
	assert.Equal(t, 0.85, result.AnalysisConfidence)
}

func TestKeywordOverlappingEntriesBothAppear(t *testing.T) {
	k := &Keyword{}
	result := k.Analyze(context.Background(), "remdec with remdesivir backup")

	// Brand and generic are separate catalog entries; both stay in the
	// result.
	require.Len(t, result.Medicines, 2)
	assert.Equal(t, "Remdec (Remdesivir)", result.Medicines[0].Name)
	assert.Equal(t, "Remdesivir", result.Medicines[1].Name)
}

func TestKeywordEmptyInput(t *testing.T) {
	k := &Keyword{}
	for _, input := range []string{"", "   ", "\n\t"} {
		result := k.Analyze(context.Background(), input)
		assert.Empty(t, result.Medicines)
		assert.Equal(t, 0.0, result.AnalysisConfidence)
		assert.NotEmpty(t, result.Explanation)
	}
}

func TestKeywordNoMatch(t *testing.T) {
	k := &Keyword{}
	result := k.Analyze(context.Background(), "two apples a day")

	assert.Empty(t, result.Medicines)
	assert.Equal(t, 0.3, result.AnalysisConfidence)
	assert.Equal(t, genericTips, result.NutritionTips)
	assert.Contains(t, result.Explanation, "No common medications detected")
}

func TestKeywordTipsDeduplicated(t *testing.T) {
	k := &Keyword{}
	// Three pain/fever medicines share one tip set
	result := k.Analyze(context.Background(), "napa, paracetamol and ibuprofen")

	require.Len(t, result.Medicines, 3)
	assertNoDuplicates(t, result.NutritionTips)
}

func TestKeywordExplanationCoversCategories(t *testing.T) {
	k := &Keyword{}
	result := k.Analyze(context.Background(), "phexin napa sergel stolin remdec")

	assert.True(t, strings.HasPrefix(result.Explanation, "This prescription contains 5 medication(s):"))
	assert.Contains(t, result.Explanation, "antibiotics will help fight bacterial infections")
	assert.Contains(t, result.Explanation, "COVID-19 treatment")
	assert.Contains(t, result.Explanation, "Pain relievers will help reduce fever and discomfort")
	assert.Contains(t, result.Explanation, "Acid reducers will protect your stomach lining")
	assert.Contains(t, result.Explanation, "Oral care products will help maintain dental hygiene")
	assert.Contains(t, result.Explanation, "Follow the prescribed dosage and complete the full course of treatment.")
}

func TestKeywordRecommendationsAlwaysPresent(t *testing.T) {
	k := &Keyword{}
	for _, input := range []string{"napa", "nothing known"} {
		result := k.Analyze(context.Background(), input)
		assert.Equal(t, standardRecommendations, result.Recommendations)
	}
}
