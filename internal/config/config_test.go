package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminHash = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_URL", "ADMIN_PASSWORD_HASH", "DEBUG_MODE", "LOG_LEVEL", "OVERRIDE_STORE",
		"OVERRIDE_FILE", "SHEETS_SPREADSHEET_ID", "GOOGLE_CREDENTIALS_PATH", "BACKEND_TIMEOUT", "WRITE_TIMEOUT",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Less(t, cfg.Backend.Timeout, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StoreFile, cfg.Overrides.Kind)
	assert.Equal(t, "mockEvents", cfg.Overrides.Key)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Backend.Configured(), "no endpoint means demo mode")
	assert.False(t, cfg.Admin.HashConfigured())
	assert.False(t, cfg.DebugMode)
}

func TestLoad_PlaceholdersMeanUnset(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", PlaceholderAPIURL)
	t.Setenv("ADMIN_PASSWORD_HASH", PlaceholderPasswordHash)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Backend.APIURL)
	assert.False(t, cfg.Backend.Configured())
	assert.Empty(t, cfg.Admin.PasswordHash)
}

func TestLoad_ConfiguredEndpoint(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", " https://script.google.com/macros/s/abc/exec ")
	t.Setenv("ADMIN_PASSWORD_HASH", "240BE518FABD2724DDB6F04EEB1DA5967448D7E831C08C8FA822809F74C720A9")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://script.google.com/macros/s/abc/exec", cfg.Backend.APIURL)
	assert.True(t, cfg.Backend.Configured())
	assert.Equal(t, adminHash, cfg.Admin.PasswordHash)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_DebugModeForcesDebugLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.DebugMode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080", WriteTimeout: 15},
			Backend:   BackendConfig{Timeout: 10},
			Overrides: OverrideConfig{Kind: StoreMemory},
			LogLevel:  "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid hash", func(c *Config) { c.Admin.PasswordHash = adminHash }, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad store", func(c *Config) { c.Overrides.Kind = "sqlite" }, true},
		{"file store without path", func(c *Config) { c.Overrides = OverrideConfig{Kind: StoreFile} }, true},
		{"redis store without addr", func(c *Config) { c.Overrides = OverrideConfig{Kind: StoreRedis} }, true},
		{"short hash", func(c *Config) { c.Admin.PasswordHash = "abc123" }, true},
		{"non-hex hash", func(c *Config) { c.Admin.PasswordHash = "zz" + adminHash[2:] }, true},
		{"sheets without credentials", func(c *Config) { c.Backend.SpreadsheetID = "sheet" }, true},
		{"zero timeout", func(c *Config) { c.Backend.Timeout = 0 }, true},
		{"backend timeout equals write timeout", func(c *Config) { c.Backend.Timeout = 15 }, true},
		{"backend timeout exceeds write timeout", func(c *Config) { c.Backend.Timeout = 30 }, true},
		{"no write deadline", func(c *Config) { c.Server.WriteTimeout = 0; c.Backend.Timeout = 30 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_RejectsBackendTimeoutPastWriteDeadline(t *testing.T) {
	clearEnv(t)
	t.Setenv("WRITE_TIMEOUT", "15")
	t.Setenv("BACKEND_TIMEOUT", "15")

	_, err := Load()
	assert.Error(t, err)
}

func TestBackendConfigured_Sheets(t *testing.T) {
	b := BackendConfig{SpreadsheetID: "sheet", CredentialsPath: "creds.json"}
	assert.True(t, b.Configured())
}
