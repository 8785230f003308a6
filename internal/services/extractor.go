package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/logger"
)

// MaxAttempts bounds every extraction to the initial call plus one retry.
const MaxAttempts = 2

// Extractor runs prompt -> LLM -> JSON -> validated record.
type Extractor struct {
	llm         LLMService
	validate    *validator.Validate
	temperature float32
	timeout     time.Duration
}

func NewExtractor(llm LLMService, temperature float32, timeout time.Duration) *Extractor {
	return &Extractor{
		llm:         llm,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		temperature: temperature,
		timeout:     timeout,
	}
}

// extract sends prompt to the model and decodes the completion into a T.
// check, if non-nil, runs after schema validation; its error counts as a parse failure.
// Any failure triggers one full retry with a fresh request.
func extract[T any](ctx context.Context, e *Extractor, operation, prompt string, check func(*T) error) (*T, error) {
	var lastErr error

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		result, err := extractOnce(ctx, e, attempt, prompt, check)
		if err == nil {
			if attempt > 1 {
				logger.Info().Str("operation", operation).Int("attempt", attempt).Msg("Extraction succeeded on retry")
			}
			return result, nil
		}

		lastErr = err
		logger.Warn().
			Err(err).
			Str("operation", operation).
			Str("kind", apperrors.Kind(err)).
			Int("attempt", attempt).
			Msg("Extraction attempt failed")

		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func extractOnce[T any](ctx context.Context, e *Extractor, attempt int, prompt string, check func(*T) error) (*T, error) {
	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	text, err := e.llm.GenerateText(callCtx, prompt, e.temperature)
	if err != nil {
		kind := apperrors.ErrTransport
		if errors.Is(err, ErrEmptyCompletion) {
			kind = apperrors.ErrParse
		}
		return nil, &apperrors.ExtractionError{Kind: kind, Attempt: attempt, Err: err}
	}

	var result T
	if err := decodeJSON(text, &result); err != nil {
		return nil, &apperrors.ExtractionError{Kind: apperrors.ErrParse, Attempt: attempt, Err: err}
	}

	if err := e.validate.Struct(&result); err != nil {
		return nil, &apperrors.ExtractionError{
			Kind:    apperrors.ErrParse,
			Attempt: attempt,
			Err:     fmt.Errorf("response does not match schema: %w", err),
		}
	}

	if check != nil {
		if err := check(&result); err != nil {
			return nil, &apperrors.ExtractionError{Kind: apperrors.ErrParse, Attempt: attempt, Err: err}
		}
	}

	return &result, nil
}

func decodeJSON(response string, target any) error {
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return fmt.Errorf("empty response")
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w (response: %s)", err, truncate(response, 200))
	}

	return nil
}

// extractJSON strips markdown fences and any prose around the outermost JSON object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
