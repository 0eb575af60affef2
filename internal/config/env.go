package config

import "os"

// envOr returns the value of the environment variable key, or fallback
// when it is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
