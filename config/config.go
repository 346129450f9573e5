package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the process reads from the environment,
// loaded once at startup.
type AppConfig struct {
	Port           string
	AllowedOrigins []string

	// Quote counter
	RedisURL    string // primary store; empty means fallback-file only
	CounterFile string

	// Email dispatch
	ResendAPIKey string // empty means emails are written to DevEmailDir
	DevEmailDir  string

	// Logging
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// Recipients and senders, overridable per environment
	QuoteSender          string
	QuoteRecipient       string
	RecruitmentSender    string
	RecruitmentRecipient string
}

// Load reads .env (if present) and the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &AppConfig{
		Port:           envOr("PORT", "8080"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),

		RedisURL:    os.Getenv("REDIS_URL"),
		CounterFile: envOr("COUNTER_FILE", ".quote-counter"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		DevEmailDir:  envOr("DEV_EMAIL_DIR", "tmp/outbox"),

		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  envIntOr("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: envIntOr("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: envIntOr("LOG_MAX_AGE_DAYS", 30),

		QuoteSender:          envOr("QUOTE_SENDER", DefaultQuoteSender),
		QuoteRecipient:       envOr("QUOTE_RECIPIENT", DefaultQuoteRecipient),
		RecruitmentSender:    envOr("RECRUITMENT_SENDER", DefaultRecruitmentSender),
		RecruitmentRecipient: envOr("RECRUITMENT_RECIPIENT", DefaultRecruitmentRecipient),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
