package models

// QuestionAnswerPair is one caller-supplied question with the candidate's answer.
type QuestionAnswerPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AnswerEvaluation struct {
	Question string `json:"question"`
	Score    int    `json:"score" validate:"gte=0,lte=10"`
	Feedback string `json:"feedback" validate:"required"`
}

type InterviewFeedback struct {
	Evaluations             []AnswerEvaluation `json:"evaluations" validate:"required,min=1,dive"`
	Strengths               []string           `json:"strengths" validate:"required,min=1,dive,required"`
	Improvements            []string           `json:"improvements" validate:"required,min=1,dive,required"`
	OverallReadinessSummary string             `json:"overall_readiness_summary" validate:"required"`
}
