// Package genai wraps the generative AI collaborator: an OpenAI-compatible
// chat completion API consumed as a plain prompt-to-text function, plus the
// prompt templates and the best-effort JSON extraction of its replies.
package genai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Nikhil-NP/vibe-check/internal/metrics"
)

const (
	requestTimeout = 30 * time.Second
	temperature    = 0.7
	maxTokens      = 800
)

// Client is the generative collaborator. A nil *Client means the feature is
// disabled; callers hold it behind the domain.GenerativeClient interface and
// check for configuration at startup.
type Client struct {
	client *openai.Client
	model  string
}

// New builds a generative client. baseURL may be empty for the default API
// host, or point at any OpenAI-compatible endpoint.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends the prompt as a single user message and returns the raw
// text reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	metrics.ExternalCallDuration.WithLabelValues("generative").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalCallsTotal.WithLabelValues("generative", "error").Inc()
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.ExternalCallsTotal.WithLabelValues("generative", "error").Inc()
		return "", fmt.Errorf("chat completion returned no choices")
	}

	metrics.ExternalCallsTotal.WithLabelValues("generative", "success").Inc()
	return resp.Choices[0].Message.Content, nil
}
