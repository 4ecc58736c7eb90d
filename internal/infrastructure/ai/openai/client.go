package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to an OpenAI-compatible API: the audio transcription endpoint
// for speech-to-text and JSON-mode chat completions for structured
// evaluation. Plain request/response, no retries.
type Client struct {
	baseURL         string
	apiKey          string
	transcribeModel string
	evalModel       string
	httpClient      *http.Client
}

func New(baseURL, apiKey, transcribeModel, evalModel string) *Client {
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		apiKey:          apiKey,
		transcribeModel: transcribeModel,
		evalModel:       evalModel,
		httpClient:      &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) chatJSON(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": c.evalModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0,
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.postJSON(ctx, "/v1/chat/completions", reqBody, &response, "evaluate"); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("evaluate: empty completion response")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
