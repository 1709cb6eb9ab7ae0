// Package openai provides a client for the OpenAI chat-completion API used
// for strategy generation and viral-potential prediction.
package openai

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
	defaultBaseURL = "https://api.openai.com/v1"

	modelGPT4  = "gpt-4"
	modelGPT35 = "gpt-3.5-turbo"
)

// Client is an OpenAI API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new OpenAI client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
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

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, model, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("empty response choices")
	}

	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}

// extractJSON recovers a JSON document from a completion that may wrap it in
// markdown code fences or preamble prose. Tries, in order: the raw text, a
// ```json fence, a generic ``` fence, and the outermost {...} or [...] span.
func extractJSON(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("empty completion")
	}

	if json.Valid([]byte(content)) {
		return []byte(content), nil
	}

	for _, fence := range []string{"```json", "```"} {
		idx := strings.Index(content, fence)
		if idx < 0 {
			continue
		}
		start := idx + len(fence)
		if newline := strings.IndexByte(content[start:], '\n'); newline >= 0 && newline < 20 {
			start += newline + 1
		}
		end := strings.Index(content[start:], "```")
		if end <= 0 {
			continue
		}
		candidate := strings.TrimSpace(content[start : start+end])
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(content, pair[0])
		end := strings.LastIndexByte(content, pair[1])
		if start < 0 || end <= start {
			continue
		}
		candidate := content[start : end+1]
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	return nil, errors.New("no valid JSON in completion")
}
