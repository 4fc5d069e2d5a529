// Package llm wraps the OpenRouter chat-completions API behind a single
// synchronous Generate call.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"mockinterview/internal/config"
)

var (
	// ErrNotConfigured means no API key is set.
	ErrNotConfigured = errors.New("OpenRouter API key not configured")
	// ErrInvalidAPIKey maps upstream 401 responses.
	ErrInvalidAPIKey = errors.New("invalid OpenRouter API key")
	// ErrEndpointNotFound maps upstream 404 responses (data retention
	// policy not configured, or model unavailable under it).
	ErrEndpointNotFound = errors.New("OpenRouter configuration issue")
	// ErrRateLimited maps upstream 429 responses.
	ErrRateLimited = errors.New("OpenRouter rate limit exceeded")
	// ErrUpstream maps upstream 5xx responses.
	ErrUpstream = errors.New("OpenRouter service unavailable")
)

// Generator produces raw model text for a prompt. Implemented by Client;
// faked in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the OpenRouter chat-completions endpoint.
type Client struct {
	config *config.LLMConfig
	client *http.Client
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Code    any    `json:"code"`
}

// NewClient creates a client from LLM config. The HTTP timeout is the
// whole per-call budget; there is no retry.
func NewClient(cfg *config.LLMConfig) *Client {
	return &Client{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate sends the prompt as a single user-role message and returns
// the first choice's content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.config.IsEnabled() {
		return "", ErrNotConfigured
	}

	reqBody := chatRequest{
		Model:       c.config.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.config.Referer)
	req.Header.Set("X-Title", c.config.Title)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("OpenRouter request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode OpenRouter response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("OpenRouter error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) > 0 {
		return chatResp.Choices[0].Message.Content, nil
	}

	return "", errors.New("empty response from OpenRouter")
}

func classifyStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var errResp struct {
		Error *apiError `json:"error"`
	}
	detail := ""
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		detail = errResp.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrEndpointNotFound, detail)
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrUpstream
	default:
		return fmt.Errorf("OpenRouter returned status %d: %s", status, detail)
	}
}
