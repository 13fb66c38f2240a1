// Package storage persists student records.
package storage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jacksmith/sms/internal/model"
)

// Backend names accepted in configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backends lists the supported backend names.
var Backends = []string{BackendFile, BackendSQLite}

// Repository is the set of operations any student store provides.
// Callers such as the interactive shell depend only on this interface.
type Repository interface {
	// Add appends s to the store. Duplicate roll numbers are allowed.
	Add(s model.Student) error

	// ListAll returns every stored record in store order.
	// An empty or missing store yields an empty slice.
	ListAll() ([]model.Student, error)

	// Update replaces the first record whose roll number equals rollNumber
	// with s, keeping its position. s may carry a different roll number.
	// Reports whether a record was replaced.
	Update(rollNumber string, s model.Student) (bool, error)

	// Delete removes every record whose roll number equals rollNumber.
	// Reports whether any record was removed.
	Delete(rollNumber string) (bool, error)
}

// Open returns the repository selected by cfg.Backend.
// The caller should Close the result if it implements io.Closer.
func Open(cfg *Config, logger *slog.Logger) (Repository, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileRepository(cfg.DataFile, logger), nil
	case BackendSQLite:
		return NewSQLiteRepository(cfg.DatabaseFile, logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Close closes repo if it holds resources.
func Close(repo Repository) error {
	if c, ok := repo.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// discardLogger is used when a repository is built without a logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
