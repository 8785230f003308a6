package services

import (
	"context"
	"fmt"
	"strings"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/logger"
	"codeclutch/interview-api/internal/models"
)

type QuestionGeneratorService interface {
	Generate(ctx context.Context, skills []string) (*models.QuestionSet, error)
}

type questionGeneratorService struct {
	extractor     *Extractor
	promptBuilder *PromptBuilder
}

func NewQuestionGeneratorService(extractor *Extractor) QuestionGeneratorService {
	return &questionGeneratorService{
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// Generate implements QuestionGeneratorService.
func (s *questionGeneratorService) Generate(ctx context.Context, skills []string) (*models.QuestionSet, error) {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	if len(cleaned) == 0 {
		return nil, apperrors.InvalidInput("skills list cannot be empty")
	}

	prompt := s.promptBuilder.BuildQuestionGenerationPrompt(cleaned)

	questionSet, err := extract[models.QuestionSet](ctx, s.extractor, "question_generation", prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	warnOnDistribution(questionSet)

	return questionSet, nil
}

// warnOnDistribution logs sets that drift from 2 basic / 2 medium / 1 hard with a deep dive.
func warnOnDistribution(qs *models.QuestionSet) {
	counts := qs.DifficultyCounts()
	if counts[models.DifficultyBasic] == 2 &&
		counts[models.DifficultyMedium] == 2 &&
		counts[models.DifficultyHard] == 1 &&
		qs.HasDeepDive() {
		return
	}

	logger.Warn().
		Int("basic", counts[models.DifficultyBasic]).
		Int("medium", counts[models.DifficultyMedium]).
		Int("hard", counts[models.DifficultyHard]).
		Int("deep_dive", counts[models.DifficultyDeepDive]).
		Bool("has_deep_dive", qs.HasDeepDive()).
		Msg("Generated questions do not follow the requested difficulty mix")
}
