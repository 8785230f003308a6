package services

import (
	"context"
	"errors"
	"fmt"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/config"
)

// ErrEmptyCompletion is returned by providers when the model answered without any text.
var ErrEmptyCompletion = errors.New("no text content in response")

// LLMService sends a single prompt to a chat/completion model and returns the raw text.
type LLMService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	ProviderName() string
}

// NewLLMService builds the provider selected by cfg.Provider.
func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(cfg)
	case config.ProviderClaude:
		return NewClaudeService(cfg)
	case config.ProviderOpenRouter:
		return NewOpenRouterService(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", apperrors.ErrConfiguration, cfg.Provider)
	}
}

func requireAPIKey(provider, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: %s API key is empty", apperrors.ErrConfiguration, provider)
	}
	return nil
}
