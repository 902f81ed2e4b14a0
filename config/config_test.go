package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GMAIL_USER", "owner@example.com")
	t.Setenv("GMAIL_PASS", "app-password")
	t.Setenv("FRONTEND_URL", "https://portfolio.example.com/, http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.MailboxAddress)
	assert.Equal(t, "app-password", cfg.MailboxPassword)
	assert.Equal(t, "owner@example.com", cfg.SMTPUsername)
	assert.Equal(t, []string{"https://portfolio.example.com", "http://localhost:3000"}, cfg.FrontendURLs)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GMAIL_USER", " owner@example.com ")
	t.Setenv("SMTP_HOST", "smtp-relay.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USERNAME", "relay-user")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.MailboxAddress)
	assert.Equal(t, "smtp-relay.example.com", cfg.SMTPHost)
	assert.Equal(t, "465", cfg.SMTPPort)
	assert.Equal(t, "relay-user", cfg.SMTPUsername)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ReleaseMode)
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(" , "))
	assert.Equal(t, []string{"https://a.dev"}, splitOrigins("https://a.dev/"))
}
