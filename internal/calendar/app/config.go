package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Optional: issuer claim for session tokens (default: borgcal)
	DatabaseFile string // Optional: path to SQLite database file (default: ./calendar.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	AdminUsername string // Optional: seeded admin username on first boot (default: Admin)
	AdminPassword string // Optional: seeded admin password on first boot (default: Admin)

	TokenTTL               time.Duration // Optional: session token lifetime (default: 12h)
	MaxOccurrencesPerEvent int           // Optional: recurrence expansion cap per event (default: 1000)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:       getEnvOrDefault("CAL_ISSUER", "borgcal"),
		DatabaseFile: getEnvOrDefault("CAL_DATABASE_FILE", "calendar.db"),
		PepperFile:   getEnvOrDefault("CAL_PEPPER_FILE", "pepper"),

		AdminUsername: getEnvOrDefault("CAL_ADMIN_USERNAME", "Admin"),
		AdminPassword: getEnvOrDefault("CAL_ADMIN_PASSWORD", "Admin"),

		TokenTTL:               getEnvDurationOrDefault("CAL_TOKEN_TTL", 12*time.Hour),
		MaxOccurrencesPerEvent: getEnvIntOrDefault("CAL_MAX_OCCURRENCES_PER_EVENT", 1000),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
