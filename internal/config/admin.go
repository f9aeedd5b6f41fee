// Package config provides admin credential configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AdminConfig holds the single admin credential that guards the job
// management endpoints. The password is stored as a bcrypt hash; a plaintext
// ADMIN_PASSWORD is hashed at startup as a convenience for local runs.
type AdminConfig struct {
	Username     string
	PasswordHash string
	BcryptCost   int
}

// NewAdminConfig creates an admin configuration from environment variables.
// It reads ADMIN_USERNAME (required) and either ADMIN_PASSWORD_HASH or
// ADMIN_PASSWORD (one of the two is required). BCRYPT_COST defaults to 12.
func NewAdminConfig() (*AdminConfig, error) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	cfg := &AdminConfig{
		Username:     username,
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		BcryptCost:   cost,
	}

	if cfg.PasswordHash == "" {
		plaintext := os.Getenv("ADMIN_PASSWORD")
		if plaintext == "" {
			return nil, fmt.Errorf("either ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		cfg.PasswordHash = string(hash)
	}

	return cfg, nil
}

// VerifyCredentials checks the provided username and password against the
// configured admin credential.
func (c *AdminConfig) VerifyCredentials(username, password string) error {
	if username != c.Username {
		return fmt.Errorf("unknown user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	return nil
}
