package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/logger"
	"codeclutch/interview-api/internal/models"
)

// respondError maps invalid input to 400 and every other failure to 500.
func respondError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if errors.Is(err, apperrors.ErrInvalidInput) {
		code = fiber.StatusBadRequest
	}

	event := logger.Error()
	if code < fiber.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Err(err).
		Str("kind", apperrors.Kind(err)).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("Request failed")

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: message,
		Code:  fiber.StatusBadRequest,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
