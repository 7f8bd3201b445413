package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeminiRESTClient talks to the generateContent REST endpoint directly.
// Request body: {"contents":[{"parts":[{"text":"..."}]}]}; the usable text
// lives at candidates[0].content.parts[0].text. Anything else is a failure.
type GeminiRESTClient struct {
	HTTP     *http.Client
	Endpoint string
	APIKey   string
}

func NewGeminiRESTClient(endpoint, apiKey string) *GeminiRESTClient {
	return &GeminiRESTClient{
		// Generation is slow; this is an outer guard, the per-request
		// deadline comes from the caller's context.
		HTTP:     &http.Client{Timeout: 90 * time.Second},
		Endpoint: endpoint,
		APIKey:   apiKey,
	}
}

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
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiRESTClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := c.Endpoint
	if c.APIKey != "" {
		url = fmt.Sprintf("%s?key=%s", c.Endpoint, c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// Cancellation aborts the underlying call via the request context.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("call generative endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &HTTPStatusError{Status: resp.StatusCode}
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response envelope: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAIResponse
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyAIResponse
	}

	return text, nil
}
