package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer   string        // Issuer claim for session tokens (default: solara-accounts)
	TokenTTL time.Duration // Session token lifetime (default: 24h)

	DatabaseFile string // Path to SQLite database file (default: ./accounts.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)
	SecretFile   string // Path to file containing the token signing secret (default: ./secret)

	CORSAllowedOrigins []string // Origins allowed to call the API from a browser

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5001)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("ACCOUNTS_ISSUER", "solara-accounts"),
		TokenTTL:            getEnvDurationOrDefault("ACCOUNTS_TOKEN_TTL", 24*time.Hour),
		DatabaseFile:        getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		PepperFile:          getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),
		SecretFile:          getEnvOrDefault("ACCOUNTS_SECRET_FILE", "secret"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5001),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Comma-separated origin list; empty means same-origin only in prod and
	// wildcard in dev (the CORS middleware treats "*" specially).
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	} else if cfg.Env == "dev" {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg
}

// Dev reports whether the service runs in development mode. Error responses
// include internal detail only when this is true.
func (c Config) Dev() bool {
	return c.Env == "dev" || c.Env == "test"
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
