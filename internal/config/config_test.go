package config_test

import (
	"testing"

	"github.com/fieldops/landing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, config.EnvProduction, cfg.Env)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.False(t, cfg.IsDevelopment())
}

func TestNew_DevelopmentMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
}

func TestNew_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := config.New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestNew_RejectsBadAddr(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_ADDR", "not-an-address")

	_, err := config.New()

	require.Error(t, err)
}

func TestNew_RejectsBadLogFormat(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_ADDR", "")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := config.New()

	require.Error(t, err)
}
