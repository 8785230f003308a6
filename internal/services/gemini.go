package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"codeclutch/interview-api/internal/config"
	"codeclutch/interview-api/internal/logger"
)

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
}

func NewGeminiService(cfg config.LLMConfig) (LLMService, error) {
	if err := requireAPIKey(config.ProviderGemini, cfg.APIKey); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

// GenerateText implements LLMService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  g.maxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("nil response: %w", ErrEmptyCompletion)
	}

	text := resp.Text()
	if text == "" {
		logger.Debug().Int("candidates", len(resp.Candidates)).Msg("Gemini returned no text")
		return "", ErrEmptyCompletion
	}

	return text, nil
}

func (g *geminiService) ProviderName() string {
	return config.ProviderGemini
}
