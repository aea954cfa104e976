package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dondusang")
	t.Setenv("JWT_SECRET", "test-secret")

	config, err := loadConfig()
	require.NoError(t, err)

	assert.EqualValues(t, 8080, config.ServerPort)
	assert.EqualValues(t, 10, config.ReadTimeoutSec)
	assert.EqualValues(t, 15, config.WriteTimeoutSec)
	assert.EqualValues(t, 1440, config.TokenTTLMin)
	assert.EqualValues(t, 1, config.AdminUserID)
	assert.Contains(t, config.CORSAllowedOrigins, "http://localhost:5173")
}

func TestLoadConfigRequiredValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := loadConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dondusang")
	t.Setenv("JWT_SECRET", "")

	_, err = loadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dondusang")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ADMIN_USER_ID", "7")

	config, err := loadConfig()
	require.NoError(t, err)

	assert.EqualValues(t, 9000, config.ServerPort)
	assert.EqualValues(t, 7, config.AdminUserID)
}
