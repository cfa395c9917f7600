package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

	log "github.com/sirupsen/logrus"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

const promptTemplate = `
You are a medical assistant. Analyze the prescription below:

"""%s"""

Extract the following:
- List of medicines with dose and purpose
- Food to avoid for each medicine
- Safety considerations (e.g. pregnancy, diabetic)
- Nutrition tips
- Safety recommendations

Format the answer clearly and simply.
`

// Gemini calls the generative text API and parses the free-form answer
// into the structured result. Any failure (network, non-200, empty
// candidate) degrades to the keyword provider on the original input.
type Gemini struct {
	apiKey   string
	model    string
	client   *http.Client
	fallback *Keyword
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		model:  model,
		// the upstream call is synchronous per request, keep it bounded
		client:   &http.Client{Timeout: 30 * time.Second},
		fallback: &Keyword{},
	}
}

func (g *Gemini) Analyze(ctx context.Context, text string) ds.AnalysisResult {
	response, err := g.generate(ctx, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		log.WithError(err).Warn("gemini call failed, falling back to keyword analysis")
		return g.fallback.Analyze(ctx, text)
	}
	return parseResponse(response)
}

// Request and response shapes for the generateContent REST call.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiEndpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty answer")
	}
	return text, nil
}
