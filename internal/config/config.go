package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Placeholder values shipped in the configuration template. They mean "unset".
const (
	PlaceholderAPIURL       = "YOUR_GOOGLE_APPS_SCRIPT_URL_HERE"
	PlaceholderPasswordHash = "YOUR_PASSWORD_HASH_HERE"
)

// Override store kinds
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	AppName   string
	Server    ServerConfig
	Backend   BackendConfig
	Admin     AdminConfig
	Overrides OverrideConfig
	CORS      CORSConfig
	DebugMode bool
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// BackendConfig describes where remote data lives. Both sources empty is demo mode.
type BackendConfig struct {
	APIURL          string
	Timeout         int // seconds per outbound call, below Server.WriteTimeout
	SpreadsheetID   string
	CredentialsPath string
}

type AdminConfig struct {
	PasswordHash string // lowercase hex SHA-256, empty when not provisioned
}

type OverrideConfig struct {
	Kind      string
	FilePath  string
	Key       string
	RedisAddr string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables, after applying an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName: getEnv("APP_NAME", "Lumina Reserve"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Backend: BackendConfig{
			APIURL:          normalizeAPIURL(os.Getenv("API_URL")),
			Timeout:         getEnvAsInt("BACKEND_TIMEOUT", 10),
			SpreadsheetID:   strings.TrimSpace(os.Getenv("SHEETS_SPREADSHEET_ID")),
			CredentialsPath: strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_PATH")),
		},
		Admin: AdminConfig{
			PasswordHash: normalizePasswordHash(os.Getenv("ADMIN_PASSWORD_HASH")),
		},
		Overrides: OverrideConfig{
			Kind:      strings.ToLower(getEnv("OVERRIDE_STORE", StoreFile)),
			FilePath:  getEnv("OVERRIDE_FILE", "data/mock_events.json"),
			Key:       getEnv("OVERRIDE_KEY", "mockEvents"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		DebugMode: getEnvAsBool("DEBUG_MODE", false),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DebugMode {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Overrides.Kind {
	case StoreFile:
		if c.Overrides.FilePath == "" {
			return fmt.Errorf("OVERRIDE_FILE is required for the file override store")
		}
	case StoreRedis:
		if c.Overrides.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis override store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid override store: %s (must be file, redis, or memory)", c.Overrides.Kind)
	}

	if c.Admin.PasswordHash != "" {
		if len(c.Admin.PasswordHash) != 64 {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be a 64 character SHA-256 hex digest")
		}
		if _, err := hex.DecodeString(c.Admin.PasswordHash); err != nil {
			return fmt.Errorf("ADMIN_PASSWORD_HASH is not valid hex: %w", err)
		}
	}

	if c.Backend.SpreadsheetID != "" && c.Backend.CredentialsPath == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_PATH is required when SHEETS_SPREADSHEET_ID is set")
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}

	// The fallback response is written after the backend gives up, so it
	// has to fit inside the server's write deadline.
	if c.Server.WriteTimeout > 0 && c.Backend.Timeout >= c.Server.WriteTimeout {
		return fmt.Errorf("BACKEND_TIMEOUT (%ds) must be less than WRITE_TIMEOUT (%ds)", c.Backend.Timeout, c.Server.WriteTimeout)
	}

	return nil
}

// Configured reports whether any remote backend is available.
// An unconfigured backend is demo mode, not an error.
func (b BackendConfig) Configured() bool {
	return b.APIURL != "" || b.SpreadsheetID != ""
}

// HashConfigured reports whether an admin digest was provisioned
func (a AdminConfig) HashConfigured() bool {
	return a.PasswordHash != ""
}

func normalizeAPIURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == PlaceholderAPIURL {
		return ""
	}
	return raw
}

func normalizePasswordHash(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == strings.ToLower(PlaceholderPasswordHash) {
		return ""
	}
	return raw
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
