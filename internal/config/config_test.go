package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "4000")
	t.Setenv("BASE_URL", "https://reviews.example.com")
	t.Setenv("UPLOADS_DIR", "/var/lib/reviewhub/uploads")

	cfg := Load()

	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, "https://reviews.example.com", cfg.BaseURL)
	assert.Equal(t, "/var/lib/reviewhub/uploads", cfg.UploadsDir)
}

func TestLoad_BaseURLFollowsPort(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BASE_URL", "")
	os.Unsetenv("BASE_URL")

	cfg := Load()

	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
}
