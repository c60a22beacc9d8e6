package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort         string
	DatabaseType       string
	DatabasePath       string
	DatabaseURL        string
	RewardDismissAfter time.Duration
	RateLimitPerMinute int
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first when
// present.
func Load() *Config {
	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabaseType:       getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:       getEnv("DB_PATH", "./finplay.db"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RewardDismissAfter: time.Duration(getEnvInt("REWARD_DISMISS_SECONDS", 4)) * time.Second,
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
