package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, read once at startup. It is passed
// explicitly into handlers so they can be tested with fabricated values.
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	// Admin auth. Both may be empty — the affected endpoints then answer
	// with a misconfiguration error instead of the process refusing to start.
	AdminPassword string
	AdminSecret   string

	// Client-facing settings.
	GoogleReviewURL  string
	MenuImageBaseURL string

	// Email notifications (optional).
	ResendAPIKey string
	FromEmail    string
	NotifyEmail  string
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		DBName:           getEnv("DB_NAME", "kabakeh"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		AdminSecret:      os.Getenv("ADMIN_SECRET"),
		GoogleReviewURL:  os.Getenv("GOOGLE_REVIEW_URL"),
		MenuImageBaseURL: strings.TrimRight(os.Getenv("MENU_IMAGE_BASE_URL"), "/"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		FromEmail:        os.Getenv("FROM_EMAIL"),
		NotifyEmail:      os.Getenv("FEEDBACK_NOTIFY_EMAIL"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
