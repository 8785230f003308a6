package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"codeclutch/interview-api/internal/config"
	"codeclutch/interview-api/internal/handlers"
	"codeclutch/interview-api/internal/logger"
	"codeclutch/interview-api/internal/services"
)

// multipartOverhead leaves room for form boundaries on top of MAX_FILE_SIZE.
const multipartOverhead = 1 << 20

func main() {
	envFile := pflag.StringP("env-file", "e", ".env", "path to the env file to load")
	pflag.Parse()

	// Load configuration
	cfg := config.Load(*envFile)
	logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	logger.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	// Initialize LLM provider
	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("❌ Failed to initialize LLM provider")
	}
	logger.Info().
		Str("provider", llmService.ProviderName()).
		Str("model", cfg.LLM.Model).
		Msg("✅ LLM provider initialized successfully")

	// Initialize services
	extractor := services.NewExtractor(llmService, cfg.LLM.Temperature, cfg.LLM.Timeout)
	resumeAnalyzer := services.NewResumeAnalyzerService(extractor)
	questionGenerator := services.NewQuestionGeneratorService(extractor)
	answerEvaluator := services.NewAnswerEvaluatorService(extractor)
	documentParser := services.NewDocumentParserService()
	logger.Info().Msg("✅ Services initialized successfully")

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(resumeAnalyzer, documentParser, cfg.Upload.MaxFileSize)
	questionHandler := handlers.NewQuestionHandler(questionGenerator)
	evaluationHandler := handlers.NewEvaluationHandler(answerEvaluator)
	healthHandler := handlers.NewHealthHandler(llmService.ProviderName())
	logger.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CodeClutch API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + multipartOverhead,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", healthHandler.HandleRoot)
	app.Get("/health", healthHandler.HandleHealth)

	app.Post("/analyze-resume", resumeHandler.HandleAnalyzeText)
	app.Post("/analyze-resume-pdf", resumeHandler.HandleAnalyzePDF)
	app.Post("/analyze-resume-docx", resumeHandler.HandleAnalyzeDOCX)
	app.Post("/generate-questions", questionHandler.HandleGenerate)
	app.Post("/evaluate-answers", evaluationHandler.HandleEvaluate)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Error().Err(err).Int("code", code).Str("path", c.Path()).Msg("Unhandled request error")

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
