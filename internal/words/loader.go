// internal/words/loader.go
//
// Loader performs the one-time dictionary initialization.
//
// Initialization behavior (Load):
//   1. If a word file is configured, read it and stop. No cache, no network.
//   2. Otherwise open the SQLite cache; a list with a valid digest is used as-is.
//   3. Otherwise download the list, report progress, and store it in the cache.
//
// A failure to write the cache is logged and the downloaded list is still used.

package words

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/varshneyabhi/wordle/internal/config"
)

// Reporter receives user-facing progress messages.
type Reporter interface {
	Notice(msg string)
}

// Loader builds a Dictionary from configuration.
type Loader struct {
	cfg    config.Dictionary
	report Reporter
	http   *http.Client
	log    zerolog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.http = c }
}

// NewLoader constructs a Loader. report may be nil.
func NewLoader(cfg config.Dictionary, report Reporter, logger zerolog.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		cfg:    cfg,
		report: report,
		http:   http.DefaultClient,
		log:    logger.With().Str("component", "words").Logger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the dictionary, downloading and caching it on first use.
func (l *Loader) Load(ctx context.Context) (*Dictionary, error) {
	if l.cfg.File != "" {
		list, err := readWordFile(l.cfg.File)
		if err != nil {
			return nil, fmt.Errorf("read word file: %w", err)
		}
		l.log.Info().Str("file", l.cfg.File).Int("count", len(list)).Msg("word list loaded from file")
		return New(list)
	}

	cache, err := OpenCache(l.cfg.CacheDir, l.log)
	if err != nil {
		return nil, fmt.Errorf("open word cache: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			l.log.Warn().Err(err).Msg("close word cache")
		}
	}()

	list, err := cache.Words(ctx)
	switch {
	case err == nil && len(list) > 0:
		l.log.Info().Int("count", len(list)).Msg("word list loaded from cache")
		return New(list)
	case err == nil, errors.Is(err, ErrCacheMiss):
		l.log.Debug().Msg("word cache empty")
	case errors.Is(err, ErrCacheCorrupt):
		l.log.Warn().Err(err).Msg("discarding word cache")
	default:
		return nil, fmt.Errorf("read word cache: %w", err)
	}

	l.notice("Dictionary not found. Downloading...")
	dict, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(ctx, dict.Words(), l.cfg.URL); err != nil {
		l.log.Warn().Err(err).Msg("store word cache")
	}
	l.notice("Download is successful.")
	return dict, nil
}

// download fetches and parses the configured word list.
func (l *Loader) download(ctx context.Context) (*Dictionary, error) {
	if l.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download word list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("download word list %s: %s", l.cfg.URL, resp.Status)
	}

	list, err := parseWords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	l.log.Info().Str("url", l.cfg.URL).Int("count", len(list)).Msg("word list downloaded")
	return New(list)
}

func (l *Loader) notice(msg string) {
	if l.report != nil {
		l.report.Notice(msg)
	}
}
