package storage

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jacksmith/sms/internal/model"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository stores records in a SQLite database.
// Records are ordered by insertion id, so it behaves like FileRepository:
// updates keep position, deletes remove every match.
type SQLiteRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLiteRepository opens (or creates) the database at path and ensures
// the students table exists.
func NewSQLiteRepository(path string, logger *slog.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = discardLogger()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			roll_number TEXT    NOT NULL,
			name        TEXT    NOT NULL,
			age         INTEGER NOT NULL,
			course      TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create students table: %w", err)
	}

	logger.Debug("opened database", slog.String("path", path))
	return &SQLiteRepository{db: db, log: logger}, nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Add inserts s as the last record.
func (r *SQLiteRepository) Add(s model.Student) error {
	_, err := r.db.Exec(
		"INSERT INTO students (roll_number, name, age, course) VALUES (?, ?, ?, ?)",
		s.RollNumber, s.Name, s.Age, s.Course,
	)
	if err != nil {
		return fmt.Errorf("failed to insert student %s: %w", s.RollNumber, err)
	}
	return nil
}

// ListAll returns every record in insertion order.
func (r *SQLiteRepository) ListAll() ([]model.Student, error) {
	rows, err := r.db.Query("SELECT roll_number, name, age, course FROM students ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.RollNumber, &s.Name, &s.Age, &s.Course); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}
	return students, nil
}

// Update replaces the earliest row with the given roll number.
func (r *SQLiteRepository) Update(rollNumber string, s model.Student) (bool, error) {
	var id int64
	err := r.db.QueryRow(
		"SELECT id FROM students WHERE roll_number = ? ORDER BY id LIMIT 1",
		rollNumber,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to find student %s: %w", rollNumber, err)
	}

	_, err = r.db.Exec(
		"UPDATE students SET roll_number = ?, name = ?, age = ?, course = ? WHERE id = ?",
		s.RollNumber, s.Name, s.Age, s.Course, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update student %s: %w", rollNumber, err)
	}
	return true, nil
}

// Delete removes every row with the given roll number.
func (r *SQLiteRepository) Delete(rollNumber string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM students WHERE roll_number = ?", rollNumber)
	if err != nil {
		return false, fmt.Errorf("failed to delete student %s: %w", rollNumber, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	r.log.Debug("deleted rows", slog.String("roll_number", rollNumber), slog.Int64("count", n))
	return n > 0, nil
}
