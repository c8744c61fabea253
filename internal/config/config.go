// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the dashboard service.
type Config struct {
	Port           string
	GinMode        string
	MaxUploadBytes int64
}

const defaultMaxUploadBytes = 8 << 20 // 8 MiB

// Load reads the configuration from environment variables, falling back to
// defaults. A .env file in the working directory is loaded first if present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return Config{
		Port:           getEnv("MOODMELT_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		MaxUploadBytes: getEnvInt64("MOODMELT_MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

// getEnv reads an environment variable with a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("Invalid value %q for %s, using default %d", value, key, fallback)
		return fallback
	}
	return n
}
