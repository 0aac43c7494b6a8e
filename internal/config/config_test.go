package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 9000
api_base_url = "http://localhost:8080"
log_level = "trace"
log_to_stdout = true
login_rate_limit_allowed_per_min = 15

[production]
host = ""
port = 9000
api_base_url = "https://api.fitdash.example.com"
log_level = "debug"
logs_path = "/var/log/fitdash/service.log"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 10
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	cfg, err := Load(context.Background(), "development", path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.RedisHost)

	cfg, err = Load(context.Background(), "production", path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.fitdash.example.com", cfg.APIBaseURL)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 10, cfg.LoginRateLimitAllowedPerMin)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t)

	t.Setenv("FITDASH_API_BASE_URL", "http://127.0.0.1:8099")
	t.Setenv("FITDASH_LOG_LEVEL", "warn")

	cfg, err := Load(context.Background(), "dev", path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8099", cfg.APIBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnknownEnv(t *testing.T) {
	path := writeTestConfig(t)

	_, err := Load(context.Background(), "staging", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")
}
