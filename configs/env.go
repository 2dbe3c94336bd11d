package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file if present. Missing files are not an
// error: production environments inject variables directly.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetString returns the environment variable value or the fallback.
func GetString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetInt returns the environment variable parsed as int or the fallback.
func GetInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
