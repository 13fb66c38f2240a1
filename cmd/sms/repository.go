package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jacksmith/sms/internal/cli"
	"github.com/jacksmith/sms/internal/storage"
)

// openRepository loads configuration from the working directory, applies
// the persistent flags, and opens the selected backend.
func openRepository() (storage.Repository, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	if rootBackend != "" {
		cfg.Backend = rootBackend
	}
	backend, err := cli.MatchOption(cfg.Backend, storage.Backends)
	if err != nil {
		return nil, &cli.ValidationError{Field: "backend", Message: err.Error()}
	}
	cfg.Backend = backend

	if rootFile != "" {
		switch cfg.Backend {
		case storage.BackendSQLite:
			cfg.DatabaseFile = rootFile
		default:
			cfg.DataFile = rootFile
		}
	}

	return storage.Open(cfg, newLogger(cfg.LogLevel, os.Stderr))
}

// newLogger returns a text logger at the named level, warn if unrecognized.
func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
