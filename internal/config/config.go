package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	Email     EmailConfig
	Inference InferenceConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	PublicURL   string // base URL used in palette links (emails)
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool // false for local
}

type EmailConfig struct {
	SMTPHost string
	SMTPPort string
	From     string
}

// InferenceConfig configures the external multimodal completion service.
// Any OpenAI-compatible chat completions endpoint works.
type InferenceConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads config from environment variables
func Load() (*Config, error) {
	inferenceTimeout, err := time.ParseDuration(getEnv("INFERENCE_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid INFERENCE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Palette API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			PublicURL:   getEnv("APP_PUBLIC_URL", "http://localhost:3000"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "palettes"),
			UseSSL:    false,
		},
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", "localhost"),
			SMTPPort: getEnv("SMTP_PORT", "1025"),
			From:     getEnv("EMAIL_FROM", "My Color Palette <noreply@mycolorpalette.dev>"),
		},
		Inference: InferenceConfig{
			APIKey:  getEnv("INFERENCE_API_KEY", ""),
			BaseURL: getEnv("INFERENCE_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("INFERENCE_MODEL", "gpt-4o"),
			Timeout: inferenceTimeout,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for sanity
func (c *Config) Validate() error {
	// The classification path is useless without a credential.
	// Fail at startup rather than on the first upload.
	if c.App.Environment == "production" {
		if c.Inference.APIKey == "" {
			return fmt.Errorf("INFERENCE_API_KEY must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
