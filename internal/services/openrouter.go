package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeclutch/interview-api/internal/config"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterService talks to any OpenAI-compatible chat completion endpoint,
// OpenRouter by default.
type openRouterService struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenRouterService(cfg config.LLMConfig) (LLMService, error) {
	if err := requireAPIKey(config.ProviderOpenRouter, cfg.APIKey); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = openRouterBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openRouterService{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxOutputTokens,
	}, nil
}

// GenerateText implements LLMService.
func (o *openRouterService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		MaxTokens:   o.maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *openRouterService) ProviderName() string {
	return config.ProviderOpenRouter
}
