package config

import "fmt"

// StorageConfig holds menu blob storage configuration.
type StorageConfig struct {
	// Dir is the directory uploaded files are written to.
	Dir string
	// PublicBaseURL is the URL prefix stored files are served under.
	PublicBaseURL string
}

// LoadStorageConfigFromEnv loads storage configuration from environment variables.
func LoadStorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Dir:           GetEnv("STORAGE_DIR", "data/files"),
		PublicBaseURL: GetEnv("STORAGE_PUBLIC_BASE_URL", "/files"),
	}
}

// Validate validates storage configuration.
func (c StorageConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("STORAGE_DIR is required")
	}
	if c.PublicBaseURL == "" {
		return fmt.Errorf("STORAGE_PUBLIC_BASE_URL is required")
	}
	return nil
}
