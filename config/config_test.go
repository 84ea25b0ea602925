package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternfly/gallery/config"
)

// writeConfig writes a YAML config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
storage:
  endpoint: storage.example.net:9000
  access_key: testkey
  secret_key: testsecret
  public_url: https://account.example.net
`

func TestLoad_RefusesToStartWithoutStorageSettings(t *testing.T) {
	// No config file, no env: endpoint, credentials and public URL are all
	// missing and validation must fail.
	_, err := config.Load([]string{writeConfig(t, "")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_RefusesToStartWithoutCredential(t *testing.T) {
	path := writeConfig(t, `
storage:
  endpoint: storage.example.net:9000
  public_url: https://account.example.net
`)

	_, err := config.Load([]string{path}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load([]string{writeConfig(t, validConfig)}, nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "lanternfly-images", cfg.Storage.Container)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.RequestTimeout)
	assert.False(t, cfg.CORS.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
env: prod
server:
  port: 9090
storage:
  endpoint: storage.example.net:9000
  access_key: testkey
  secret_key: testsecret
  use_ssl: false
  public_url: https://cdn.example.net/
  container: custom-images
  request_timeout: 5
cors:
  enabled: true
  allowed_origins:
    - https://app.example.net
log:
  level: debug
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "storage.example.net:9000", cfg.Storage.Endpoint)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "https://cdn.example.net/", cfg.Storage.PublicURL)
	assert.Equal(t, "custom-images", cfg.Storage.Container)
	assert.Equal(t, 5, cfg.Storage.RequestTimeout)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://app.example.net"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GALLERY_STORAGE_ENDPOINT", "env.example.net:9000")
	t.Setenv("GALLERY_STORAGE_ACCESS_KEY", "envkey")
	t.Setenv("GALLERY_STORAGE_SECRET_KEY", "envsecret")
	t.Setenv("GALLERY_STORAGE_PUBLIC_URL", "https://env.example.net")
	t.Setenv("GALLERY_STORAGE_CONTAINER", "env-images")

	cfg, err := config.Load([]string{writeConfig(t, "")}, nil)
	require.NoError(t, err)

	assert.Equal(t, "env.example.net:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "envkey", cfg.Storage.AccessKey)
	assert.Equal(t, "env-images", cfg.Storage.Container)
}

func TestLoad_InvalidPublicURL(t *testing.T) {
	path := writeConfig(t, `
storage:
  endpoint: storage.example.net:9000
  access_key: testkey
  secret_key: testsecret
  public_url: not-a-url
`)

	_, err := config.Load([]string{path}, nil)
	require.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, validConfig + `
log:
  level: loud
`)

	_, err := config.Load([]string{path}, nil)
	require.Error(t, err)
}
