package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseMatchesMedicinesInAnswer(t *testing.T) {
	result := parseResponse("The prescription includes Amoxicillin for the infection.")

	require.Len(t, result.Medicines, 1)
	assert.Equal(t, "Amoxicillin", result.Medicines[0].Name)
	assert.Equal(t, 0.9, result.AnalysisConfidence)
}

func TestParseResponseExtractsSections(t *testing.T) {
	response := "Your medicines: Napa.\n" +
		"Safety recommendations:\n" +
		"* avoid driving until you know how it affects you\n" +
		"Nutrition tips:\n" +
		"* eat plenty of fresh fruit every single day\n" +
		"* drink lots of water throughout the day\n"

	result := parseResponse(response)

	assert.Contains(t, result.NutritionTips, "eat plenty of fresh fruit every single day")
	assert.Contains(t, result.NutritionTips, "drink lots of water throughout the day")
	assert.Contains(t, result.Recommendations, "avoid driving until you know how it affects you")
	assert.Equal(t, response, result.RawProviderResponse)
}

func TestParseResponseSkipsShortListItems(t *testing.T) {
	response := "Nutrition tips:\n* too short\n* this one is long enough to keep around\n"

	result := parseResponse(response)

	assert.NotContains(t, result.NutritionTips, "too short")
	assert.Contains(t, result.NutritionTips, "this one is long enough to keep around")
}

func TestParseResponseDefaultsWhenNoSections(t *testing.T) {
	result := parseResponse("Take the medicine twice a day with water.")

	assert.Equal(t, defaultAITips, result.NutritionTips)
	assert.Equal(t, defaultAIRecommendations, result.Recommendations)
}

func TestParseResponseTruncatesExplanation(t *testing.T) {
	long := strings.Repeat("a", 300)
	result := parseResponse(long)

	assert.Equal(t, "AI Analysis: "+strings.Repeat("a", 200)+"...", result.Explanation)
	assert.Equal(t, long, result.RawProviderResponse)

	short := "short answer"
	result = parseResponse(short)
	assert.Equal(t, "AI Analysis: short answer", result.Explanation)
}

func TestParseResponseTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ওষুধ ", 100)
	result := parseResponse(long)

	assert.True(t, utf8.ValidString(result.Explanation))
	assert.Equal(t, "AI Analysis: "+string([]rune(long)[:200])+"...", result.Explanation)
}

func TestParseResponseTipsDeduplicated(t *testing.T) {
	response := "Nutrition tips:\n" +
		"* drink water through the whole day\n" +
		"* drink water through the whole day\n"

	result := parseResponse(response)

	count := 0
	for _, tip := range result.NutritionTips {
		if tip == "drink water through the whole day" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
