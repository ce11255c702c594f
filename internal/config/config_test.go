package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage_path: ./storage/polls.db
secret: s3cr3t
http_server:
  address: 0.0.0.0:9090
  timeout: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "./storage/polls.db", cfg.StoragePath)
	assert.Equal(t, "s3cr3t", cfg.Secret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingStoragePath(t *testing.T) {
	path := writeConfig(t, "secret: s3cr3t\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_NoFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
