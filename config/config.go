package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	SiteURL string // Overrides the url in the site catalog when set
	// Optional path to a YAML catalog replacing the embedded one
	SiteContentPath string
	LogLevel        string
	AllowedOrigins  []string
	ReleaseMode     bool
	// Inquiry archive (optional)
	DBUrl string
	// SMTP Configuration (Brevo)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	SendTimeout    time.Duration
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		SiteURL:         strings.TrimRight(getEnv("SITE_URL", ""), "/"),
		SiteContentPath: getEnv("SITE_CONTENT_PATH", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"https://mycirclesofcare.com.au", "https://www.mycirclesofcare.com.au"}),
		ReleaseMode:     getEnv("GIN_MODE", "") == "release",
		DBUrl:           getEnv("DATABASE_URL", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@mycirclesofcare.com.au"), // Must be verified in Brevo
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "contact@mycirclesofcare.com.au"),
		SendTimeout:    time.Duration(getEnvInt("SEND_TIMEOUT_SECONDS", 15)) * time.Second,
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Inquiries will not be archived.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow returns the configured rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
