package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries all process settings. It is built once in main and
// passed down; nothing reads the environment after startup.
type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	RedisURL   string

	// SessionSecret signs session cookies.
	SessionSecret string
	// SessionTTL controls the cookie lifetime. Zero means a
	// browser-session cookie (cleared when the browser closes).
	SessionTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", "gonetfly"),
		DBPort:        getenv("DB_PORT", "5432"),
		RedisURL:      getenv("REDIS_URL", "redis://localhost:6379"),
		SessionSecret: getenv("SESSION_SECRET", ""),
	}

	if v := strings.TrimSpace(os.Getenv("SESSION_TTL_MINUTES")); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.SessionTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
