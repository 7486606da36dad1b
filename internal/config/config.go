package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment. It is
// loaded once in main and passed down explicitly; no other package reads
// environment variables.
type Config struct {
	Port        string
	DatabaseURL string

	OllamaHost  string
	OllamaModel string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir string

	// FallbackLanguage is used for image-only requests, where there is no
	// symptom text to detect a language from. "bn" or "en".
	FallbackLanguage string

	// ImageProcessing reports whether this deployment can decode uploads.
	// When false the consultation endpoint rejects images with a
	// service-level error instead of a decode failure.
	ImageProcessing bool

	TelegramToken  string
	TelegramChatID int64
}

// Load reads the process environment (plus an optional .env file) into a
// Config. Missing required values are an error; optional ones get defaults.
func Load() (*Config, error) {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		OllamaHost:       strings.TrimRight(getenv("OLLAMA_HOST", "http://localhost:11434"), "/"),
		OllamaModel:      getenv("OLLAMA_MODEL", "qwen3-vl:2b"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		UploadDir:        getenv("UPLOAD_DIR", "uploads"),
		FallbackLanguage: getenv("FALLBACK_LANGUAGE", "bn"),
		ImageProcessing:  getenv("IMAGE_PROCESSING", "true") == "true",
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	ttlHours := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %w", err)
		}
		ttlHours = n
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
