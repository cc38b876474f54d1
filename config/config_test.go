package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddress())
	assert.Equal(t, "App Shell", cfg.Title)
	assert.Equal(t, "appshell_session", cfg.Session.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Store.DarkModeDefault)
	assert.True(t, cfg.Features.MetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APPSHELL_HTTP_PORT", "9090")
	t.Setenv("APPSHELL_DARK_MODE_DEFAULT", "true")
	t.Setenv("APPSHELL_MENU_PATH", "/etc/appshell/menu.yaml")
	t.Setenv("APPSHELL_STORE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Store.DarkModeDefault)
	assert.Equal(t, "/etc/appshell/menu.yaml", cfg.MenuPath)
	assert.Equal(t, 10000, cfg.Store.MaxVisitors, "unparsable values fall back to defaults")
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("APPSHELL_HTTP_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}
