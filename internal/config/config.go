// Package config reads runtime defaults for the fitness tracker from the environment.
package config

import (
	"os"
	"strconv"
)

// Config captures runtime configuration values. Command line flags override them.
type Config struct {
	HTTPAddress string
	LogLevel    string
	InputFormat string // csv, json or log
	Validate    bool   // run value checks before computing
	MaxBatch    int    // maximum packages per API batch request
}

// Load reads environment variables into Config, applying defaults for local use.
func Load() Config {
	return Config{
		HTTPAddress: getEnv("FITNESS_HTTP_ADDRESS", ":8080"),
		LogLevel:    getEnv("FITNESS_LOG_LEVEL", "info"),
		InputFormat: getEnv("FITNESS_INPUT_FORMAT", "csv"),
		Validate:    getBoolEnv("FITNESS_VALIDATE", true),
		MaxBatch:    getIntEnv("FITNESS_MAX_BATCH", 100),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
