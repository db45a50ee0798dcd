// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// transcriptionPrompt instructs the model to emit the page transcription
// with no surrounding commentary. Equations come back as LaTeX so the
// output renders in Markdown viewers with math support.
const transcriptionPrompt = `Transcribe this slide to markdown/latex format. Include all text, equations, diagrams descriptions, and structure. Use LaTeX for mathematical equations (inline: $...$, display: $$...$$). Preserve the hierarchical structure with appropriate headers. Output ONLY the transcription without any introductory text or explanations.`

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// anthropicVersion is the fixed protocol version header value.
const anthropicVersion = "2023-06-01"

// ClaudeBackend calls the Claude Messages API with one page image per
// request and returns the model's transcription.
type ClaudeBackend struct {
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the Claude API conversation.
type claudeMessage struct {
	Role    string          `json:"role"`
	Content []claudeContent `json:"content"`
}

// claudeContent is one content block in a message: either an image block
// (Source set) or a text block (Text set).
type claudeContent struct {
	Type   string             `json:"type"`
	Source *claudeImageSource `json:"source,omitempty"`
	Text   string             `json:"text,omitempty"`
}

// claudeImageSource carries a base64-encoded image payload.
type claudeImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// Transcribe sends one encoded page image plus the transcription prompt
// and returns the first text content block of the response. A non-2xx
// status becomes an *APIError carrying the status code and raw body; a
// response without text content becomes ErrEmptyContent.
func (c *ClaudeBackend) Transcribe(ctx context.Context, imageB64 string) (string, error) {
	reqBody := claudeRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Messages: []claudeMessage{
			{
				Role: "user",
				Content: []claudeContent{
					{
						Type: "image",
						Source: &claudeImageSource{
							Type:      "base64",
							MediaType: "image/png",
							Data:      imageB64,
						},
					},
					{
						Type: "text",
						Text: transcriptionPrompt,
					},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding Claude response: %w", err)
	}

	for _, block := range cResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", ErrEmptyContent
}
