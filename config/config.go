package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// Comma separated origins allowed to call the API from a browser
	FrontendURLs []string
	// Mailbox that both sends and receives contact messages
	MailboxAddress  string
	MailboxPassword string
	// SMTP Configuration (Gmail by default)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	// DKIM Configuration (optional)
	DKIMSelector   string
	DKIMDomain     string
	DKIMPrivateKey string
	DKIMKeyPath    string
	// ReleaseMode mirrors GIN_MODE=release
	ReleaseMode bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development only)
	_ = godotenv.Load()

	mailbox := strings.TrimSpace(getEnv("GMAIL_USER", ""))

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		FrontendURLs: splitOrigins(getEnv("FRONTEND_URL", "http://localhost:3000")),
		// Mailbox
		MailboxAddress:  mailbox,
		MailboxPassword: getEnv("GMAIL_PASS", ""),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", mailbox),
		// DKIM Configuration
		DKIMSelector:   strings.TrimSpace(getEnv("DKIM_SELECTOR", "")),
		DKIMDomain:     strings.TrimSpace(getEnv("DKIM_DOMAIN", "")),
		DKIMPrivateKey: getEnv("DKIM_PRIVATE_KEY", ""),
		DKIMKeyPath:    strings.TrimSpace(getEnv("DKIM_KEY_PATH", "")),
		ReleaseMode:    getEnv("GIN_MODE", "") == "release",
	}

	if cfg.MailboxAddress == "" || cfg.MailboxPassword == "" {
		log.Println("WARNING: GMAIL_USER or GMAIL_PASS is missing. Contact form will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// splitOrigins trims the trailing slash of every origin so it compares
// equal to the browser's Origin header.
func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
