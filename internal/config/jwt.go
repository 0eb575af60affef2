package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultTokenLifetimeHours = 24

// JWTConfig carries the signing settings for API session tokens.
// Issuer is stamped into every token and checked on validation, so
// tokens minted by another service with the same secret are rejected.
type JWTConfig struct {
	Secret          string
	Issuer          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required), JWT_ISSUER and
// JWT_EXPIRATION_HOURS from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours, err := strconv.Atoi(envOr("JWT_EXPIRATION_HOURS", strconv.Itoa(defaultTokenLifetimeHours)))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", hours)
	}

	return &JWTConfig{
		Secret:          secret,
		Issuer:          envOr("JWT_ISSUER", "interview-coach"),
		ExpirationHours: hours,
	}, nil
}
