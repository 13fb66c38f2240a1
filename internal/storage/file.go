package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jacksmith/sms/internal/model"
)

// FileRepository stores one record per line in a plain text file.
// Mutations rewrite the whole file. It is not safe for concurrent use.
type FileRepository struct {
	path string
	log  *slog.Logger
}

// NewFileRepository returns a repository backed by the file at path.
// The file is created empty if it does not exist. A creation failure is
// logged rather than returned; later operations report the real error.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	if logger == nil {
		logger = discardLogger()
	}
	r := &FileRepository{path: path, log: logger}

	_, err := os.Stat(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			r.log.Error("failed to create data file", slog.String("path", path), slog.String("error", err.Error()))
		} else {
			f.Close()
			r.log.Info("created data file", slog.String("path", path))
		}
	default:
		r.log.Error("failed to access data file", slog.String("path", path), slog.String("error", err.Error()))
	}

	return r
}

// Add appends s as a new line.
func (r *FileRepository) Add(s model.Student) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", r.path, err)
	}

	if err := model.WriteStudents(f, []model.Student{s}); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close data file %s: %w", r.path, err)
	}
	return nil
}

// ListAll reads and parses every line. Malformed lines are skipped.
func (r *FileRepository) ListAll() ([]model.Student, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Student{}, nil
		}
		return nil, fmt.Errorf("failed to open data file %s: %w", r.path, err)
	}
	defer f.Close()

	students, skipped, err := model.ReadStudents(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if skipped > 0 {
		r.log.Debug("skipped malformed lines", slog.String("path", r.path), slog.Int("count", skipped))
	}
	return students, nil
}

// Update replaces the first match and rewrites the file.
// The file is untouched when nothing matches.
func (r *FileRepository) Update(rollNumber string, s model.Student) (bool, error) {
	students, err := r.ListAll()
	if err != nil {
		return false, err
	}

	found := false
	for i := range students {
		if students[i].RollNumber == rollNumber {
			students[i] = s
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := r.writeAll(students); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every match and rewrites the file.
// The file is untouched when nothing matches.
func (r *FileRepository) Delete(rollNumber string) (bool, error) {
	students, err := r.ListAll()
	if err != nil {
		return false, err
	}

	kept := students[:0]
	for _, s := range students {
		if s.RollNumber != rollNumber {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(students) {
		return false, nil
	}

	if err := r.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

// writeAll truncates the file and writes students in order.
// Malformed lines dropped by ListAll do not survive a rewrite.
func (r *FileRepository) writeAll(students []model.Student) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to open data file %s for rewrite: %w", r.path, err)
	}

	if err := model.WriteStudents(f, students); err != nil {
		f.Close()
		return fmt.Errorf("failed to rewrite %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close data file %s: %w", r.path, err)
	}

	r.log.Debug("rewrote data file", slog.String("path", r.path), slog.Int("records", len(students)))
	return nil
}
