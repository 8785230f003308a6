package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/models"
)

const goK8sQuestionsJSON = `{
  "questions": [
    {"question": "What is a goroutine?", "difficulty": "basic", "skill_focus": "Go", "deep_dive": false},
    {"question": "What is a Kubernetes pod?", "difficulty": "basic", "skill_focus": "Kubernetes", "deep_dive": false},
    {"question": "How would you bound concurrency in a Go worker pool?", "difficulty": "medium", "skill_focus": "Go", "deep_dive": false},
    {"question": "How do readiness and liveness probes differ?", "difficulty": "medium", "skill_focus": "Kubernetes", "deep_dive": false},
    {"question": "Walk through how the Go scheduler handles a blocking syscall.", "difficulty": "hard", "skill_focus": "Go", "deep_dive": true}
  ]
}`

func TestGenerateQuestions(t *testing.T) {
	llm := newFakeLLM(ok(goK8sQuestionsJSON))
	generator := NewQuestionGeneratorService(newTestExtractor(llm))

	qs, err := generator.Generate(context.Background(), []string{"Go", "Kubernetes"})

	require.NoError(t, err)
	require.Len(t, qs.Questions, models.QuestionSetSize)

	counts := qs.DifficultyCounts()
	assert.GreaterOrEqual(t, counts[models.DifficultyBasic], 1)
	assert.GreaterOrEqual(t, counts[models.DifficultyMedium], 1)
	assert.GreaterOrEqual(t, counts[models.DifficultyHard], 1)
	assert.True(t, qs.HasDeepDive())
	for _, q := range qs.Questions {
		assert.Contains(t, []string{"Go", "Kubernetes"}, q.SkillFocus)
	}

	prompt := llm.LastPrompt()
	assert.Contains(t, prompt, "Go, Kubernetes")
	assert.Contains(t, prompt, "exactly 5 interview questions")
	assert.Contains(t, prompt, `"deep_dive": true`)
}

func TestGenerateQuestionsRejectsEmptySkills(t *testing.T) {
	for _, skills := range [][]string{nil, {}, {"", "  "}} {
		llm := newFakeLLM(ok(goK8sQuestionsJSON))
		generator := NewQuestionGeneratorService(newTestExtractor(llm))

		_, err := generator.Generate(context.Background(), skills)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Zero(t, llm.CallCount())
	}
}

func TestGenerateQuestionsTrimsSkills(t *testing.T) {
	llm := newFakeLLM(ok(goK8sQuestionsJSON))
	generator := NewQuestionGeneratorService(newTestExtractor(llm))

	_, err := generator.Generate(context.Background(), []string{" Go ", "", "Kubernetes"})

	require.NoError(t, err)
	assert.Contains(t, llm.LastPrompt(), "CANDIDATE SKILLS:\nGo, Kubernetes\n")
}

func TestGenerateQuestionsWrongCountIsRetried(t *testing.T) {
	fourQuestions := `{"questions":[
		{"question":"a","difficulty":"basic","skill_focus":"Go"},
		{"question":"b","difficulty":"basic","skill_focus":"Go"},
		{"question":"c","difficulty":"medium","skill_focus":"Go"},
		{"question":"d","difficulty":"hard","skill_focus":"Go"}]}`
	llm := newFakeLLM(ok(fourQuestions), ok(goK8sQuestionsJSON))
	generator := NewQuestionGeneratorService(newTestExtractor(llm))

	qs, err := generator.Generate(context.Background(), []string{"Go"})

	require.NoError(t, err)
	assert.Len(t, qs.Questions, 5)
	assert.Equal(t, 2, llm.CallCount())
}

func TestGenerateQuestionsRejectsUnknownDifficulty(t *testing.T) {
	bad := `{"questions":[
		{"question":"a","difficulty":"basic","skill_focus":"Go"},
		{"question":"b","difficulty":"basic","skill_focus":"Go"},
		{"question":"c","difficulty":"medium","skill_focus":"Go"},
		{"question":"d","difficulty":"medium","skill_focus":"Go"},
		{"question":"e","difficulty":"expert","skill_focus":"Go"}]}`
	llm := newFakeLLM(ok(bad))
	generator := NewQuestionGeneratorService(newTestExtractor(llm))

	_, err := generator.Generate(context.Background(), []string{"Go"})

	assert.ErrorIs(t, err, apperrors.ErrParse)
	assert.Contains(t, err.Error(), "question generation failed")
	assert.Equal(t, 2, llm.CallCount())
}

func TestGenerateQuestionsAcceptsDeepDiveLabel(t *testing.T) {
	labelled := `{"questions":[
		{"question":"a","difficulty":"basic","skill_focus":"Go"},
		{"question":"b","difficulty":"basic","skill_focus":"Go"},
		{"question":"c","difficulty":"medium","skill_focus":"Go"},
		{"question":"d","difficulty":"medium","skill_focus":"Go"},
		{"question":"e","difficulty":"deep_dive","skill_focus":"Go"}]}`
	llm := newFakeLLM(ok(labelled))
	generator := NewQuestionGeneratorService(newTestExtractor(llm))

	qs, err := generator.Generate(context.Background(), []string{"Go"})

	require.NoError(t, err)
	assert.True(t, qs.HasDeepDive())
	assert.Equal(t, 1, llm.CallCount())
}
