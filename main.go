package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/varshneyabhi/wordle/internal/cli"
	"github.com/varshneyabhi/wordle/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = cli.Execute(context.Background(), cli.Deps{
		Config: cfg,
		Logger: log.Logger,
		In:     os.Stdin,
		Out:    os.Stdout,
	}, os.Args[1:])
	if err != nil {
		log.Debug().Err(err).Msg("wordle exited")
		fmt.Fprintln(os.Stderr, err)
	}
	_ = closeLog.Close()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogger applies LOG_LEVEL and points the global logger at stderr or LOG_FILE.
func setupLogger(cfg *config.Config) (io.Closer, error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.ColorDisabled()})
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
