package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiyani/lazyftp/pkg/models"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LAZYFTP_API_URL", "LAZYFTP_API_TIMEOUT", "LAZYFTP_API_TOKEN", "LAZYFTP_LOG_FILE", "LAZYFTP_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "lazyftp.log"), cfg.Log.File)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `api:
  base_url: http://ftp.internal:3001
  timeout: 5s
log:
  file: /var/log/lazyftp.log
settings:
  show_passwords: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values", func(t *testing.T) {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "http://ftp.internal:3001", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "/var/log/lazyftp.log", cfg.Log.File)
		assert.True(t, cfg.Settings.ShowPasswords)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("LAZYFTP_API_URL", "https://override.example.com")
		t.Setenv("LAZYFTP_API_TOKEN", "tok")
		t.Setenv("LAZYFTP_DEBUG", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "https://override.example.com", cfg.API.BaseURL)
		assert.Equal(t, "tok", cfg.API.Token)
		assert.True(t, cfg.Log.Debug)
	})
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfig_OmitsToken(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := models.NewConfig()
	cfg.API.Token = "do-not-write"
	cfg.Settings.SkipVersionUpdate = "1.2.0"

	require.NoError(t, SaveConfig(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "do-not-write")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", loaded.Settings.SkipVersionUpdate)
	assert.Equal(t, cfg.API.Timeout, loaded.API.Timeout)
}
