// Package config loads optional environment configuration for menuwatch.
//
// Everything has a sensible default; the environment (or a local .env
// file) only overrides the network knobs and log level. Proxy settings
// are the standard HTTP_PROXY/HTTPS_PROXY variables, honored by
// net/http's default transport without any handling here.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-sourced settings.
type Config struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
	LogLevel       string
}

const defaultTimeoutSeconds = 15

// Load reads the optional .env file and returns a populated Config.
func Load() *Config {
	// A missing .env file is the normal case; system env still applies.
	_ = godotenv.Load()

	return &Config{
		BaseURL:        getEnv("MENUWATCH_BASE_URL", ""),
		UserAgent:      getEnv("MENUWATCH_USER_AGENT", ""),
		RequestTimeout: time.Duration(getEnvInt("MENUWATCH_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		LogLevel:       getEnv("MENUWATCH_LOG_LEVEL", "INFO"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
