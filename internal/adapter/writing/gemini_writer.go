// Package writing composes optional study notes with Gemini.
package writing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leetrank/internal/domain/model"
	"leetrank/internal/domain/ports"
)

const (
	geminiEndpointTemplate = "https://generativelanguage.googleapis.com/v1/models/%s:generateContent?key=%s"
	maxNoteLength          = 2000
)

// GeminiWriter composes a short study note about the hardest ranked
// problems using the Gemini REST API.
type GeminiWriter struct {
	httpClient *http.Client
	apiKey     string
	model      string
	logger     ports.Logger
}

var _ ports.InsightWriter = (*GeminiWriter)(nil)

// NewGeminiWriter constructs a GeminiWriter.
func NewGeminiWriter(apiKey, model string, timeout time.Duration, logger ports.Logger) *GeminiWriter {
	return &GeminiWriter{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

// Compose generates a study note for the given top-ranked problems.
func (g *GeminiWriter) Compose(ctx context.Context, top []model.ScoredProblem) (string, error) {
	if g.apiKey == "" || g.model == "" {
		return "", fmt.Errorf("gemini writer not configured")
	}
	if len(top) == 0 {
		return "", fmt.Errorf("no problems to write about")
	}

	body, err := g.buildRequestBody(g.buildPrompt(top))
	if err != nil {
		return "", err
	}

	text, err := g.generate(ctx, body)
	if err != nil {
		return "", err
	}
	return trimText(text, maxNoteLength), nil
}

func (g *GeminiWriter) buildPrompt(top []model.ScoredProblem) string {
	var builder strings.Builder
	builder.WriteString("These LeetCode problems currently rank as the hardest by a composite difficulty score ")
	builder.WriteString("(low acceptance rate, few solvers, recency).\n\n")

	for i, p := range top {
		builder.WriteString(fmt.Sprintf("%d. %s (%s, %.1f%% accepted) – %s\n",
			i+1, p.Title, p.Difficulty, p.AcceptanceRate*100, p.Link))
	}

	builder.WriteString("\nWrite a short study note: the common themes across these problems, ")
	builder.WriteString("which two to attempt first and why, and one technique to review before starting. ")
	builder.WriteString("Max 150 words, plain text.\n")
	return builder.String()
}

func (g *GeminiWriter) buildRequestBody(prompt string) ([]byte, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.3,
			"topP":            0.8,
			"maxOutputTokens": 1000,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini payload: %w", err)
	}
	return body, nil
}

func (g *GeminiWriter) generate(ctx context.Context, body []byte) (string, error) {
	endpoint := fmt.Sprintf(geminiEndpointTemplate, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	for _, candidate := range payload.Candidates {
		for _, part := range candidate.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini returned empty text (candidates: %d)", len(payload.Candidates))
}

func trimText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return strings.TrimSpace(text[:max-3]) + "..."
}
