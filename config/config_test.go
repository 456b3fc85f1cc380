package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "test_secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnvVars(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "security_service", cfg.MongoDB)
	assert.Equal(t, "localhost", cfg.SMTPHost)
	assert.Equal(t, "25", cfg.SMTPPort)
	assert.Equal(t, "no-reply@localhost", cfg.SMTPFrom)
	assert.Equal(t, "test_secret", cfg.AccessTokenSecret)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "3000")
	t.Setenv("MONGO_DB", "security_prod")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "security_prod", cfg.MongoDB)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 30, cfg.AccessExpiryMin)
}

func TestLoad_InvalidExpiryFallsBack(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")

	cfg := Load()

	assert.Equal(t, 15, cfg.AccessExpiryMin)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")

	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("MISSING_KEY", "fallback"))
}
