package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	require.Equal(t, "data/users_dev.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadProfile(t *testing.T) {
	t.Setenv("USERS_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, "data/users_test.db", cfg.Database.Path)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("USERS_ENV", "production")
	t.Setenv("USERS_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("USERS_DATABASE_PATH", "/tmp/users.db")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	require.Equal(t, "/tmp/users.db", cfg.Database.Path)
}

func TestLoadUnknownEnvironment(t *testing.T) {
	t.Setenv("USERS_ENV", "staging")

	_, err := Load()
	require.Error(t, err)
}
