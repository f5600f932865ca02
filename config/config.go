package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

// BackendBaseURL is the root of the storefront REST API the gateway consumes.
func BackendBaseURL() string {
	url := os.Getenv("STOREFRONT_API_URL")
	if url == "" {
		url = "http://localhost:8000/api"
		log.Println("⚠️ STOREFRONT_API_URL not set, using local default")
	}
	return url
}

// NotificationPollInterval controls the background notification refresh.
func NotificationPollInterval() time.Duration {
	return time.Duration(getEnvInt("NOTIFICATION_POLL_SECONDS", 30)) * time.Second
}

// SearchDebounce is how long a repeated search must stay quiet before the
// gateway refetches from upstream.
func SearchDebounce() time.Duration {
	return time.Duration(getEnvInt("SEARCH_DEBOUNCE_MS", 500)) * time.Millisecond
}

// WithTimeout returns a context with a 10s timeout for upstream calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
