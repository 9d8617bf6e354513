package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CACHE_TTL_SECONDS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Admin.Email)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "en", cfg.Locale.DefaultLanguage)
	assert.Len(t, cfg.Server.AllowedOrigins, 2)
	assert.Same(t, cfg, AppConfig)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "  Owner@Example.COM ")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JWT_EXPIRY_HOURS", "not-a-number")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg := Load()

	assert.Equal(t, "owner@example.com", cfg.Admin.Email)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestCloudinaryConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.CloudinaryConfigured())

	cfg.Cloudinary = CloudinaryConfig{CloudName: "c", APIKey: "k", APISecret: "s"}
	assert.True(t, cfg.CloudinaryConfigured())
}
