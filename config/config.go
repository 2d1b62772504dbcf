package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the client reads from the environment.
type Config struct {
	// APIBaseURL is the remote café API root, including the /api prefix.
	APIBaseURL string
	// HTTPTimeout bounds every request issued by the client.
	HTTPTimeout time.Duration
	// TokenFile is where the cached bearer token lives between runs.
	TokenFile string
	// SuccessRedirectDelay is the pause before navigating to the table
	// view after a confirmed order submission.
	SuccessRedirectDelay time.Duration
	// FailureRedirectDelay is the longer pause used when the submission
	// outcome is a failure or ambiguous.
	FailureRedirectDelay time.Duration
}

// Load reads the configuration from the environment with fallbacks.
func Load() Config {
	return Config{
		APIBaseURL:           getEnv("CAFE_API_URL", "http://localhost:8080/api"),
		HTTPTimeout:          getEnvSeconds("CAFE_HTTP_TIMEOUT", 15),
		TokenFile:            getEnv("CAFE_TOKEN_FILE", ".cafe_token"),
		SuccessRedirectDelay: getEnvSeconds("CAFE_REDIRECT_DELAY", 2),
		FailureRedirectDelay: getEnvSeconds("CAFE_FAILURE_REDIRECT_DELAY", 4),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
