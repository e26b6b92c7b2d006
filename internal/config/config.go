// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is applied first when present;
// real environment variables take precedence over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds runtime settings.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" env-default:"warn" env-description:"zerolog level"`
	LogFile    string `env:"LOG_FILE" env-description:"write logs to this file instead of stderr"`
	NoColor    string `env:"NO_COLOR" env-description:"any value disables colored output"`
	Dictionary Dictionary
}

// Dictionary configures the word-validity oracle.
type Dictionary struct {
	File     string        `env:"WORDS_FILE" env-description:"local word list, one word per line"`
	URL      string        `env:"WORDS_URL" env-default:"https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt" env-description:"word list download source"`
	CacheDir string        `env:"WORDS_CACHE_DIR" env-description:"directory holding the word cache database"`
	Timeout  time.Duration `env:"WORDS_DOWNLOAD_TIMEOUT" env-default:"60s" env-description:"download deadline"`
}

// Load reads .env (if any) and the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if cfg.Dictionary.CacheDir == "" {
		cfg.Dictionary.CacheDir = defaultCacheDir()
	}
	return cfg, nil
}

// ColorDisabled reports whether NO_COLOR was set to any value.
func (c *Config) ColorDisabled() bool { return c.NoColor != "" }

// defaultCacheDir is <user cache dir>/wordle, or .wordle when no cache dir is known.
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".wordle"
	}
	return filepath.Join(dir, "wordle")
}
