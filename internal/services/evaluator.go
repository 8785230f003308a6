package services

import (
	"context"
	"fmt"
	"strings"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/models"
)

type AnswerEvaluatorService interface {
	Evaluate(ctx context.Context, pairs []models.QuestionAnswerPair) (*models.InterviewFeedback, error)
}

type answerEvaluatorService struct {
	extractor     *Extractor
	promptBuilder *PromptBuilder
}

func NewAnswerEvaluatorService(extractor *Extractor) AnswerEvaluatorService {
	return &answerEvaluatorService{
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// Evaluate implements AnswerEvaluatorService.
func (s *answerEvaluatorService) Evaluate(ctx context.Context, pairs []models.QuestionAnswerPair) (*models.InterviewFeedback, error) {
	if len(pairs) == 0 {
		return nil, apperrors.InvalidInput("question-answer pairs list cannot be empty")
	}
	for i, pair := range pairs {
		if strings.TrimSpace(pair.Question) == "" {
			return nil, apperrors.InvalidInput("question %d is empty", i+1)
		}
	}

	prompt := s.promptBuilder.BuildAnswerEvaluationPrompt(pairs)

	feedback, err := extract(ctx, s.extractor, "answer_evaluation", prompt, func(f *models.InterviewFeedback) error {
		if len(f.Evaluations) != len(pairs) {
			return fmt.Errorf("expected %d evaluations, got %d", len(pairs), len(f.Evaluations))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	for i := range feedback.Evaluations {
		if strings.TrimSpace(feedback.Evaluations[i].Question) == "" {
			feedback.Evaluations[i].Question = pairs[i].Question
		}
	}

	return feedback, nil
}
