// Package config provides configuration for the course page service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database (chat transcript store)
	DatabaseURL string

	// Upstream services
	RatingsURL      string
	AssistantURL    string
	AssistantAPIKey string

	// Timeouts
	AssistantTimeout time.Duration

	// Chat limits
	ChatMaxMessageLen int
	ChatMaxHistory    int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:       getEnv("DATABASE_URL", "file:coursepage.db?cache=shared&mode=rwc"),
		RatingsURL:        getEnv("RATINGS_URL", "http://localhost:8090"),
		AssistantURL:      getEnv("ASSISTANT_URL", "http://localhost:8091"),
		AssistantAPIKey:   getEnv("ASSISTANT_API_KEY", ""),
		AssistantTimeout:  time.Duration(getEnvInt("ASSISTANT_TIMEOUT_MS", 35000)) * time.Millisecond,
		ChatMaxMessageLen: getEnvInt("CHAT_MAX_MESSAGE_LEN", 500),
		ChatMaxHistory:    getEnvInt("CHAT_MAX_HISTORY", 20),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
