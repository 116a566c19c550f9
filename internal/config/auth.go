package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds operator authentication configuration.
type AuthConfig struct {
	// JWTSecret signs operator session tokens (HS256).
	JWTSecret string
	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration
	// BcryptCost is the bcrypt cost used when hashing operator passwords.
	BcryptCost int
	// SeedEmail and SeedPassword provision the first operator account when
	// the operators table is empty. Both empty means no seeding.
	SeedEmail    string
	SeedPassword string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:    GetEnv("AUTH_JWT_SECRET", ""),
		TokenTTL:     GetEnvDuration("AUTH_TOKEN_TTL", 12*time.Hour),
		BcryptCost:   GetEnvInt("AUTH_BCRYPT_COST", bcrypt.DefaultCost),
		SeedEmail:    GetEnv("AUTH_SEED_EMAIL", ""),
		SeedPassword: GetEnv("AUTH_SEED_PASSWORD", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if (c.SeedEmail == "") != (c.SeedPassword == "") {
		return fmt.Errorf("AUTH_SEED_EMAIL and AUTH_SEED_PASSWORD must be set together")
	}
	return nil
}
