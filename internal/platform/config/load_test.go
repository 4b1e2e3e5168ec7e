package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/platform/config"
)

const repoConfigDir = "../../../configs"

func TestLoad_Profiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, "data/todos-local.db", cfg.Store.Path)
				assert.False(t, cfg.Telemetry.Enabled)
			},
		},
		{
			profile: "dev",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "stdout", cfg.Telemetry.Exporter)
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, "/var/lib/todo-board/todos.db", cfg.Store.Path)
				assert.Equal(t, 10*time.Second, cfg.Store.BusyTimeout)
				assert.Equal(t, 8, cfg.Projector.ReindexWorkers)
				assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
				assert.NotEmpty(t, cfg.Telemetry.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(tt.profile, config.WithConfigDir(repoConfigDir))
			require.NoError(t, err)

			// Shared by every profile through base.yaml.
			assert.Equal(t, 8080, cfg.Server.Port)
			assert.Equal(t, "0.0.0.0", cfg.Server.Host)
			assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := writeConfigDir(t, "log:\n  level: warn\n", "")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Client.RateLimit.Burst)
	assert.Equal(t, 2*time.Second, cfg.UI.AutosaveInterval)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "todoctl.log", cfg.UI.LogFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfigDir(t, "", "")

	t.Setenv("APP_PROFILE", "test")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_STORE_BUSY_TIMEOUT", "1s")
	t.Setenv("APP_PROJECTOR_REINDEX_WORKERS", "2")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_CLIENT_RATE_LIMIT_REQUESTS_PER_SECOND", "0")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Second, cfg.Store.BusyTimeout)
	assert.Equal(t, 2, cfg.Projector.ReindexWorkers)
	assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
	assert.Zero(t, cfg.Client.RateLimit.RequestsPerSecond)
}

func TestLoad_OverridesWinOverEnvironment(t *testing.T) {
	dir := writeConfigDir(t, "", "client:\n  base_url: http://profile:8080\n")
	t.Setenv("APP_CLIENT_BASE_URL", "http://env:8080")

	cfg, err := config.Load("test", config.WithConfigDir(dir), config.WithOverrides(map[string]any{
		"client.base_url": "http://flag:8080",
		"store.path":      "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://flag:8080", cfg.Client.BaseURL)
	assert.Equal(t, "data/todos.db", cfg.Store.Path, "empty override is ignored")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
		base    string
		wantErr string
	}{
		{name: "empty profile", profile: " ", wantErr: "profile must not be empty"},
		{name: "separator", profile: "a/b", wantErr: "path separators"},
		{name: "traversal", profile: "..", wantErr: "path traversal"},
		{name: "missing profile file", profile: "nonexistent", wantErr: "loading profile nonexistent"},
		{name: "invalid values", profile: "test", base: "server:\n  port: 0\n", wantErr: "server.port"},
		{name: "malformed yaml", profile: "test", base: "server: [\n", wantErr: "loading base config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := writeConfigDir(t, tt.base, "")

			_, err := config.Load(tt.profile, config.WithConfigDir(dir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// writeConfigDir creates base.yaml and test.yaml in a temporary directory.
func writeConfigDir(t *testing.T, base, profile string) string {
	t.Helper()

	dir := t.TempDir()
	if base == "" {
		base = "{}\n"
	}
	if profile == "" {
		profile = "{}\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(profile), 0o600))
	return dir
}
