package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"codeclutch/interview-api/internal/models"
	"codeclutch/interview-api/internal/services"
)

type ResumeHandler struct {
	analyzer    services.ResumeAnalyzerService
	parser      services.DocumentParserService
	maxFileSize int64
}

func NewResumeHandler(
	analyzer services.ResumeAnalyzerService,
	parser services.DocumentParserService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		analyzer:    analyzer,
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyzeText handles POST /analyze-resume
func (h *ResumeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	profile, err := h.analyzer.Analyze(c.UserContext(), services.CleanText(req.ResumeText))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// HandleAnalyzePDF handles POST /analyze-resume-pdf
func (h *ResumeHandler) HandleAnalyzePDF(c *fiber.Ctx) error {
	return h.analyzeUpload(c, models.DocumentPDF, h.parser.ExtractPDF)
}

// HandleAnalyzeDOCX handles POST /analyze-resume-docx
func (h *ResumeHandler) HandleAnalyzeDOCX(c *fiber.Ctx) error {
	return h.analyzeUpload(c, models.DocumentDOCX, h.parser.ExtractDOCX)
}

func (h *ResumeHandler) analyzeUpload(
	c *fiber.Ctx,
	docType models.DocumentType,
	extractText func([]byte) (*models.ParsedDocument, error),
) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != docType.Extension() {
		return badRequest(c, fmt.Sprintf("Only %s files are supported", strings.ToUpper(string(docType))))
	}

	if file.Size > h.maxFileSize {
		return badRequest(c, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to open uploaded file: %v", err),
			Code:  fiber.StatusInternalServerError,
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to read uploaded file: %v", err),
			Code:  fiber.StatusInternalServerError,
		})
	}

	doc, err := extractText(data)
	if err != nil {
		return respondError(c, fmt.Errorf("%s resume analysis failed: %w", strings.ToUpper(string(docType)), err))
	}

	profile, err := h.analyzer.Analyze(c.UserContext(), services.CleanText(doc.Text))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}
