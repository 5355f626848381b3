package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	Environment    string
	JWTSecret      string
	PMSBaseURL     string
	PMSToken       string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	StatementDir   string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		Environment:    getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		PMSBaseURL:     getEnv("PMS_BASE_URL", ""),
		PMSToken:       getEnv("PMS_API_TOKEN", ""),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		StatementDir:   getEnv("STATEMENT_DIR", "storage/statements"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.PMSBaseURL) == "" {
		return fmt.Errorf("PMS_BASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}
