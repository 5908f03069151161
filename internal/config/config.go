// Package config reads the process configuration from the environment.
//
// Secrets and API keys are injected here once at startup and passed down
// explicitly, nothing else reads the environment at request time.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Token signing
	JWTSecret        string
	JWTRefreshSecret string

	// Google sign-in
	GoogleClientID string

	// AI suggestions
	GeminiAPIKey string
}

var (
	ErrJWTSecretMissing = errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	ErrPortInvalid      = errors.New("PORT must be a number between 1 and 65535")
)

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/cashpilot.db"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
	}
}

// Validate returns an error if the configuration cannot be used to run the
// backend.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.JWTRefreshSecret == "" {
		return ErrJWTSecretMissing
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w, got %q", ErrPortInvalid, c.Port)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
