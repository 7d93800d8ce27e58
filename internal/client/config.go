package client

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the client connection settings.
type Config struct {
	// BaseURL is the server address, with or without a scheme.
	BaseURL string

	// CookieJarPath is where session and anti-forgery cookies persist
	// between invocations.
	CookieJarPath string

	// RequestTimeout bounds every single API call.
	RequestTimeout time.Duration
}

// ConfigFromEnv assembles the client configuration from environment
// variables, falling back to local-development defaults.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:        getenv("AUTHGATE_SERVER_URL", "http://localhost:8000"),
		CookieJarPath:  getenv("AUTHGATE_COOKIE_JAR", defaultJarPath()),
		RequestTimeout: 15 * time.Second,
	}
}

func defaultJarPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "authgate-cookies.json"
	}
	return filepath.Join(home, ".authgate", "cookies.json")
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
