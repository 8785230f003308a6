package models

import "time"

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

type GenerateQuestionsRequest struct {
	Skills []string `json:"skills"`
}

type EvaluateAnswersRequest struct {
	QAPairs []QuestionAnswerPair `json:"qa_pairs"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status   string    `json:"status"`
	Provider string    `json:"provider"`
	Time     time.Time `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
