package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Optional: issuer claim for session tokens (default: jess-credentials)
	PublicBaseURL string // Optional: public origin for certificate links (default: http://localhost:{port})

	StoreDriver  string // Optional: store driver (sqlite, localkv) (default: sqlite)
	DatabaseFile string // Optional: path to SQLite database file (default: ./portal.db)
	DataDir      string // Optional: data directory for the localkv driver (default: ./data)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SupabaseURL    string // Optional: Supabase project URL; when set, credentials persist remotely
	SupabaseAPIKey string // Optional: Supabase service key (required with SupabaseURL)
	SupabaseTable  string // Optional: remote table name (default: credentials)

	AdminEmail    string // Optional: seeded admin email (default: admin@jess.local)
	AdminUsername string // Optional: seeded admin username (default: admin)
	AdminPassword string // Optional: seeded admin password; empty skips seeding

	SessionTTL          time.Duration // Optional: session token lifetime (default: 8h)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:        getEnvOrDefault("PORTAL_ISSUER", "jess-credentials"),
		PublicBaseURL: os.Getenv("PORTAL_PUBLIC_BASE_URL"),

		StoreDriver:  getEnvOrDefault("PORTAL_STORE_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		DataDir:      getEnvOrDefault("PORTAL_DATA_DIR", "data"),
		PepperFile:   getEnvOrDefault("PORTAL_PEPPER_FILE", "pepper"),

		SupabaseURL:    os.Getenv("PORTAL_SUPABASE_URL"),
		SupabaseAPIKey: os.Getenv("PORTAL_SUPABASE_API_KEY"),
		SupabaseTable:  os.Getenv("PORTAL_SUPABASE_TABLE"),

		AdminEmail:    getEnvOrDefault("PORTAL_ADMIN_EMAIL", "admin@jess.local"),
		AdminUsername: getEnvOrDefault("PORTAL_ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("PORTAL_ADMIN_PASSWORD"),

		SessionTTL:          getEnvDurationOrDefault("PORTAL_SESSION_TTL", 8*time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
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
