package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, "/auth/login/", cfg.Auth.LoginPath)
	assert.Equal(t, "auth_token", cfg.Auth.CookieName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSTS_PAGE_SIZE", "25")
	t.Setenv("AUTH_LOGIN_PATH", "/login/")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, "/login/", cfg.Auth.LoginPath)
	assert.Equal(t, "9000", cfg.App.Port)
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("POSTS_PAGE_SIZE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("DB_PASSWORD", "a-real-password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestValidate_PageSizeMustBePositive(t *testing.T) {
	t.Setenv("POSTS_PAGE_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}
