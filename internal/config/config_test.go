package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, int64(24), cfg.JWTExpiryHours)
	assert.False(t, cfg.Production())

	require.Len(t, cfg.AdminAccounts, 2)
	assert.Equal(t, "owner", cfg.AdminAccounts[0].Role)
	assert.Equal(t, "admin", cfg.AdminAccounts[1].Username)
}

func TestLoad_AdditionalAdmins(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADDITIONAL_ADMINS", "alice:pw1, bob:pw2,malformed,:nopass")

	cfg, err := Load()
	require.NoError(t, err)

	// owner + admin + two well-formed extras; malformed pairs are skipped
	require.Len(t, cfg.AdminAccounts, 4)
	assert.Equal(t, "alice", cfg.AdminAccounts[2].Username)
	assert.Equal(t, "admin", cfg.AdminAccounts[2].Role)
	assert.Equal(t, "bob", cfg.AdminAccounts[3].Username)
}

func TestLoad_InvalidExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "zero")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}
