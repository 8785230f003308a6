package handlers

import (
	"github.com/gofiber/fiber/v2"

	"codeclutch/interview-api/internal/models"
	"codeclutch/interview-api/internal/services"
)

type EvaluationHandler struct {
	evaluator services.AnswerEvaluatorService
}

func NewEvaluationHandler(evaluator services.AnswerEvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /evaluate-answers
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if len(req.QAPairs) == 0 {
		return badRequest(c, "Question-answer pairs list cannot be empty")
	}

	feedback, err := h.evaluator.Evaluate(c.UserContext(), req.QAPairs)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feedback)
}
