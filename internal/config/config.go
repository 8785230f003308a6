package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"codeclutch/interview-api/internal/apperrors"
	"codeclutch/interview-api/internal/logger"
)

const (
	ProviderGemini     = "gemini"
	ProviderClaude     = "claude"
	ProviderOpenRouter = "openrouter"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Upload UploadConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LLMConfig struct {
	Provider        string
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float32
	MaxOutputTokens int
	Timeout         time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

type LogConfig struct {
	Level  string
	Format string
}

// apiKeyEnv names the provider-specific key variable consulted when LLM_API_KEY is unset.
var apiKeyEnv = map[string]string{
	ProviderGemini:     "GEMINI_API_KEY",
	ProviderClaude:     "ANTHROPIC_API_KEY",
	ProviderOpenRouter: "OPENROUTER_API_KEY",
}

var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash",
	ProviderClaude:     "claude-3-7-sonnet-latest",
	ProviderOpenRouter: "nvidia/nemotron-3-nano-30b-a3b:free",
}

// Load reads envFile (if present) into the environment and builds the config.
// An empty envFile means ".env".
func Load(envFile string) *Config {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.Info().Str("file", envFile).Msg("No env file found. Using environment and default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "150s"),
		},
		LLM: LLMConfig{
			Provider:        provider,
			APIKey:          getEnv("LLM_API_KEY", getEnv(apiKeyEnv[provider], "")),
			Model:           getEnv("LLM_MODEL", defaultModels[provider]),
			BaseURL:         getEnv("LLM_BASE_URL", ""),
			Temperature:     getEnvAsFloat32("LLM_TEMPERATURE", 0.3),
			MaxOutputTokens: getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 4096),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
	}
}

// Validate reports missing or inconsistent settings as apperrors.ErrConfiguration.
func (c *Config) Validate() error {
	keyEnv, ok := apiKeyEnv[c.LLM.Provider]
	if !ok {
		return fmt.Errorf("%w: unsupported LLM provider %q", apperrors.ErrConfiguration, c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s (or LLM_API_KEY) is not set", apperrors.ErrConfiguration, keyEnv)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("%w: LLM_MODEL is empty", apperrors.ErrConfiguration)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("%w: LLM_TIMEOUT must be positive", apperrors.ErrConfiguration)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("%w: MAX_FILE_SIZE must be positive", apperrors.ErrConfiguration)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
