// Package openaichat implements the narrative service on OpenAI-compatible
// chat completion APIs.
package openaichat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultTemperature = 0.1
	defaultTopP        = 0.9
)

// Client implements usecase.NarrativeGenerator with chat completions.
type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

// New creates a Client. baseURL may be empty for api.openai.com, or point at
// any compatible endpoint.
func New(apiKey, baseURL, model string, logger *slog.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger.With("component", "openai_client"),
	}
}

// Generate sends prompt as a single user message.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()
	log := c.logger.With(slog.String("model", c.model), slog.Int("max_tokens", maxTokens))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	})
	if err != nil {
		log.Error("Chat completion failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	log.Info("Chat completion received",
		slog.Int("content_length", len(content)),
		slog.Duration("elapsed", time.Since(start)))
	return content, nil
}

// Label implements usecase.NarrativeGenerator.
func (c *Client) Label() string {
	return "OpenAI " + c.model
}
