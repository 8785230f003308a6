package services

import (
	"fmt"
	"strings"

	"codeclutch/interview-api/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the prompt for resume extraction
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume analyzer for software engineering roles.
Your task is to extract key information from the resume below and classify the candidate.

RESUME:
%s

Extract:
1. The candidate's full name (use "Unknown" if no name is present)
2. All technical skills: programming languages, frameworks, databases, tools, platforms
3. Significant projects (2-3 or more if available), one short title or sentence each
4. The experience level, using exactly these rules:
   - "beginner": less than 1 year of professional experience, or a student
   - "intermediate": 1-3 years of experience, or internship-level experience
   - "advanced": 3+ years of experience, or leadership roles, or multiple substantial projects

Return your response in the following JSON format:
{
  "name": "<candidate name or Unknown>",
  "skills": ["<skill>", "..."],
  "projects": ["<project>", "..."],
  "experience_level": "<beginner|intermediate|advanced>"
}

Return ONLY the JSON object. Do not include explanations, markdown, or any text before or after the JSON.`,
		resumeText)
}

// BuildQuestionGenerationPrompt creates the prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(skills []string) string {
	return fmt.Sprintf(`You are an expert technical interviewer creating interview questions for a software engineer.

CANDIDATE SKILLS:
%s

Generate exactly %d interview questions that are specific to these skills and practical for real technical interviews.

Requirements:
- 2 "basic" questions (fundamental concepts)
- 2 "medium" questions (practical application)
- 1 "hard" question (complex problem-solving)
- At least one of the questions must also be a deep dive that explores a single topic thoroughly; mark it with "deep_dive": true
- Each question targets one specific skill from the list, named in "skill_focus"
- Prefer real-world scenarios over trivia

Return your response in the following JSON format:
{
  "questions": [
    {
      "question": "<the interview question>",
      "difficulty": "<basic|medium|hard>",
      "skill_focus": "<the skill this question targets>",
      "deep_dive": <true|false>
    }
  ]
}

Return ONLY the JSON object. Do not include explanations, markdown, or any text before or after the JSON.`,
		strings.Join(skills, ", "), models.QuestionSetSize)
}

// BuildAnswerEvaluationPrompt creates the prompt for answer evaluation
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(pairs []models.QuestionAnswerPair) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating software engineering interview answers.
Provide comprehensive, constructive feedback. Be encouraging but honest and specific.

QUESTION-ANSWER PAIRS:
%s

Score each answer from 0 to 10 based on correctness, completeness and clarity:
- 0-3: Incorrect or very poor answer
- 4-6: Partially correct, missing key points
- 7-8: Good answer with minor gaps
- 9-10: Excellent, comprehensive answer

Provide:
1. Exactly %d evaluations, one per question, in the same order as the questions above
2. 3-5 key strengths demonstrated across all answers
3. 3-5 specific, actionable areas for improvement
4. An overall readiness summary of 2-3 sentences about the candidate's interview preparation level

Return your response in the following JSON format:
{
  "evaluations": [
    {
      "question": "<the question text>",
      "score": <integer 0-10>,
      "feedback": "<specific feedback for this answer>"
    }
  ],
  "strengths": ["<strength>", "..."],
  "improvements": ["<improvement>", "..."],
  "overall_readiness_summary": "<2-3 sentences>"
}

Return ONLY the JSON object. Do not include explanations, markdown, or any text before or after the JSON.`,
		FormatQAPairs(pairs), len(pairs))
}

// FormatQAPairs renders pairs as numbered "Question N" / "Answer N" blocks.
func FormatQAPairs(pairs []models.QuestionAnswerPair) string {
	var parts []string
	for i, pair := range pairs {
		answer := strings.TrimSpace(pair.Answer)
		if answer == "" {
			answer = "(no answer provided)"
		}
		parts = append(parts, fmt.Sprintf("Question %d: %s\nAnswer %d: %s",
			i+1, strings.TrimSpace(pair.Question), i+1, answer))
	}

	return strings.Join(parts, "\n\n")
}
