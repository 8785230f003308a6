package services

import (
	"context"
	"fmt"
	"strings"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/logger"
	"codeclutch/interview-api/internal/models"
)

type ResumeAnalyzerService interface {
	Analyze(ctx context.Context, resumeText string) (*models.ResumeProfile, error)
}

type resumeAnalyzerService struct {
	extractor     *Extractor
	promptBuilder *PromptBuilder
}

func NewResumeAnalyzerService(extractor *Extractor) ResumeAnalyzerService {
	return &resumeAnalyzerService{
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements ResumeAnalyzerService.
func (s *resumeAnalyzerService) Analyze(ctx context.Context, resumeText string) (*models.ResumeProfile, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, apperrors.InvalidInput("resume text cannot be empty")
	}

	prompt := s.promptBuilder.BuildResumeAnalysisPrompt(resumeText)
	logger.Debug().Int("prompt_length", len(prompt)).Msg("Resume analysis prompt built")

	profile, err := extract[models.ResumeProfile](ctx, s.extractor, "resume_analysis", prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}

	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		profile.Name = models.UnknownCandidate
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Projects == nil {
		profile.Projects = []string{}
	}

	return profile, nil
}
