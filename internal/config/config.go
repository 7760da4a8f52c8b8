package config

import (
	"os"
	"strconv"
	"strings"

	"guardrails/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Upload UploadConfig
	CORS   CORSConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AIConfig holds AI insight generation settings. An empty APIKey
// disables insight generation rather than failing startup.
type AIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// UploadConfig holds dataset upload limits
type UploadConfig struct {
	MaxFileSize int64
}

// CORSConfig holds the allowed-origin list for browser clients
type CORSConfig struct {
	AllowedOrigins []string
}

// defaultOrigins mirrors the deployed frontend plus common local dev ports
var defaultOrigins = []string{
	"https://data-quality-guardrails.vercel.app",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8080",
	"http://localhost:5173",
	"http://localhost:8000",
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		AI:     loadAIConfig(),
		Upload: loadUploadConfig(),
		CORS:   loadCORSConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadAIConfig() AIConfig {
	return AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:   getEnvIntOrDefault("MAX_TOKENS", 2000),
		Temperature: getEnvFloatOrDefault("TEMPERATURE", 1.0),
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxFileSize: int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 50*1024*1024)),
	}
}

func loadCORSConfig() CORSConfig {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		return CORSConfig{AllowedOrigins: origins}
	}
	return CORSConfig{AllowedOrigins: defaultOrigins}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Upload.MaxFileSize <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if len(config.CORS.AllowedOrigins) == 0 {
		return errors.ConfigInvalid("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
