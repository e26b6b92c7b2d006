package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes keys for the duration of the test. An empty value would
// override env-default, so the variables must be absent.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "LOG_LEVEL", "LOG_FILE", "NO_COLOR", "WORDS_FILE", "WORDS_URL", "WORDS_CACHE_DIR", "WORDS_DOWNLOAD_TIMEOUT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ColorDisabled())
	assert.Empty(t, cfg.Dictionary.File)
	assert.Contains(t, cfg.Dictionary.URL, "words_alpha.txt")
	assert.Equal(t, 60*time.Second, cfg.Dictionary.Timeout)
	assert.NotEmpty(t, cfg.Dictionary.CacheDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("WORDS_URL", "http://127.0.0.1/words.txt")
	t.Setenv("WORDS_CACHE_DIR", dir)
	t.Setenv("WORDS_DOWNLOAD_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ColorDisabled())
	assert.Equal(t, Dictionary{
		File:     "/tmp/words.txt",
		URL:      "http://127.0.0.1/words.txt",
		CacheDir: dir,
		Timeout:  5 * time.Second,
	}, cfg.Dictionary)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("WORDS_DOWNLOAD_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
