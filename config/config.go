package config

import (
	"os"
	"strconv"
	"time"
)

// Config memegang seluruh konfigurasi aplikasi dari environment.
type Config struct {
	Port         string
	DBPath       string
	GatewayDelay time.Duration
}

// Load reads configuration from environment variables with development
// defaults. The .env file itself is loaded by main via godotenv.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("SBP_DB_PATH", "smartbus.db"),
		GatewayDelay: time.Duration(getEnvInt("SBP_GATEWAY_DELAY_MS", 1500)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
