package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Admin (shared secret for /api/admin/*)
	AdminToken string

	// Encouragement generation
	GeminiAPIKey  string
	GeminiModel   string
	EnrichTimeout time.Duration

	// Feedback email
	ResendAPIKey  string
	EmailFrom     string
	FeedbackEmail string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "Hermit Cove"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/hermitcove.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		AdminToken: envRequired("ADMIN_TOKEN"),

		GeminiAPIKey:  envString("GEMINI_API_KEY", ""),
		GeminiModel:   envString("GEMINI_MODEL", ""),
		EnrichTimeout: envDuration("ENRICH_TIMEOUT", 10*time.Second),

		ResendAPIKey:  envString("RESEND_API_KEY", ""),
		EmailFrom:     envString("EMAIL_FROM", "noreply@example.com"),
		FeedbackEmail: envString("FEEDBACK_EMAIL", ""),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures production deployments are not running with a
// guessable admin token. Development keeps the check relaxed for local use.
func validateProduction(cfg *Config) {
	if len(cfg.AdminToken) < 16 {
		slog.Error("production deployment requires an ADMIN_TOKEN of at least 16 characters")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
