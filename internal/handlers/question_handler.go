package handlers

import (
	"github.com/gofiber/fiber/v2"

	"codeclutch/interview-api/internal/models"
	"codeclutch/interview-api/internal/services"
)

type QuestionHandler struct {
	generator services.QuestionGeneratorService
}

func NewQuestionHandler(generator services.QuestionGeneratorService) *QuestionHandler {
	return &QuestionHandler{
		generator: generator,
	}
}

// HandleGenerate handles POST /generate-questions
func (h *QuestionHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if len(req.Skills) == 0 {
		return badRequest(c, "Skills list cannot be empty")
	}

	questions, err := h.generator.Generate(c.UserContext(), req.Skills)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(questions)
}
