// Package config provides environment-driven application configuration.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Database holds PostgreSQL connection configuration.
	Database DatabaseConfig
	// Auth holds operator authentication configuration.
	Auth AuthConfig
	// Storage holds menu blob storage configuration.
	Storage StorageConfig
	// Venue holds venue-local time configuration.
	Venue VenueConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		Database: LoadDatabaseConfigFromEnv(),
		Auth:     LoadAuthConfigFromEnv(),
		Storage:  LoadStorageConfigFromEnv(),
		Venue:    LoadVenueConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage config validation failed: %w", err)
	}

	if err := c.Venue.Validate(); err != nil {
		return fmt.Errorf("venue config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
