package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"codeclutch/interview-api/internal/models"
)

const (
	appName    = "CodeClutch API"
	appVersion = "1.0.0"
)

type HealthHandler struct {
	provider string
}

func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// HandleRoot handles GET /
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.RootResponse{
		Message: appName + " is running",
		Version: appVersion,
		Status:  "active",
	})
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:   "healthy",
		Provider: h.provider,
		Time:     time.Now(),
	})
}
