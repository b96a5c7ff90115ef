package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.HTTPPort)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "test-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
	assert.True(t, cfg.RateLimit.Enabled)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiresTokenSecret(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "3000"},
		Auth: AuthConfig{BcryptCost: 12},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestValidate_BcryptCostRange(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{HTTPPort: "3000"},
		Auth: AuthConfig{TokenSecret: "s", BcryptCost: bcrypt.MaxCost + 1},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Name:     "auth_service",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=auth_service")
	assert.Contains(t, dsn, "sslmode=disable")
}
