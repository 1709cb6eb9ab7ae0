// Package perplexity provides a client for the Perplexity search-grounded
// chat-completion API, including schema-constrained structured responses.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.perplexity.ai"
	defaultModel   = "sonar-pro"

	freeTextMaxTokens   = 1024
	structuredMaxTokens = 2048

	researchSystemPrompt = "You are an expert research assistant helping influencers discover " +
		"trending content ideas based on geography and audience demographics."
	structuredSystemPrompt = "You are an expert research assistant. Always respond with valid JSON " +
		"that matches the requested schema exactly."
)

// ErrDecode is returned when a schema-constrained response does not validate
// against the expected record shape. Callers fall back; it never reaches the
// user directly.
var ErrDecode = errors.New("structured response does not match schema")

// Client is a Perplexity API client.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Perplexity client using the sonar-pro model.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string `json:"type"`
	JSONSchema struct {
		Schema map[string]any `json:"schema"`
	} `json:"json_schema"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask sends a free-text question and returns the completion prose.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: researchSystemPrompt},
			{Role: "user", Content: question},
		},
		MaxTokens: freeTextMaxTokens,
	}

	return c.complete(ctx, req)
}

// AskStructured sends a question requesting schema-constrained JSON output
// and strictly decodes the completion into out. Any transport error or
// schema mismatch yields an error and no partial result.
func (c *Client) AskStructured(ctx context.Context, question string, schema map[string]any, out any) error {
	format := &responseFormat{Type: "json_schema"}
	format.JSONSchema.Schema = schema

	req := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: structuredSystemPrompt},
			{Role: "user", Content: question},
		},
		MaxTokens:      structuredMaxTokens,
		ResponseFormat: format,
	}

	content, err := c.complete(ctx, req)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling chat completions: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response choices")
	}

	return apiResp.Choices[0].Message.Content, nil
}
