package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// setupAndRestoreEnv saves original env vars and sets new ones for testing.
func setupAndRestoreEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()
	originalEnv := make(map[string]string)
	for key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	return func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			}
		}
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Auth: AuthConfig{
			JWTSecret:  "secret",
			TokenTTL:   12 * time.Hour,
			BcryptCost: bcrypt.DefaultCost,
		},
		Storage: StorageConfig{
			Dir:           "data/files",
			PublicBaseURL: "/files",
		},
		Venue: VenueConfig{
			Timezone: "Europe/Dublin",
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "data/files", cfg.Storage.Dir)
	assert.Equal(t, "/files", cfg.Storage.PublicBaseURL)
	assert.Equal(t, "Europe/Dublin", cfg.Venue.Timezone)
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{
		"SERVER_PORT":     ":9090",
		"LOG_LEVEL":       "debug",
		"GIN_MODE":        "debug",
		"AUTH_JWT_SECRET": "s3cret",
		"AUTH_TOKEN_TTL":  "1h",
		"STORAGE_DIR":     "/tmp/blobs",
		"VENUE_TIMEZONE":  "Europe/London",
	})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/tmp/blobs", cfg.Storage.Dir)
	assert.Equal(t, "Europe/London", cfg.Venue.Timezone)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.JWTSecret = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
	})

	t.Run("seed email without seed password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.SeedEmail = "admin@omahonys.ie"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth.BcryptCost = bcrypt.MaxCost + 1
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing storage dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Dir = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "storage config validation failed")
	})

	t.Run("unknown venue timezone", func(t *testing.T) {
		cfg := validConfig()
		cfg.Venue.Timezone = "Mars/Olympus_Mons"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "venue config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})

	t.Run("valid gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode
			assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
		}
	})
}

func TestVenueConfig_Location(t *testing.T) {
	loc, err := VenueConfig{Timezone: "Europe/Dublin"}.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Europe/Dublin", loc.String())

	_, err = VenueConfig{Timezone: "nope"}.Location()
	assert.Error(t, err)
}

func TestServerConfig_GetAddress(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: ":8080"}.GetAddress())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: ":8080"}.GetAddress())
	assert.Equal(t, "127.0.0.1:9090", ServerConfig{Host: "127.0.0.1", Port: "9090"}.GetAddress())
}
