package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort    string
	BaseURL    string
	UploadsDir string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("APP_PORT", "3001")

	return &Config{
		AppPort:    port,
		BaseURL:    getEnv("BASE_URL", "http://localhost:"+port),
		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
