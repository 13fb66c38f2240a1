package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/sms/internal/model"
)

// NotFoundError indicates no record carries the given roll number.
type NotFoundError struct {
	Type string // "student"
	ID   string // the roll number that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with roll number %s not found", e.Type, e.ID)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidateStudent checks user input and converts field failures to
// ValidationError.
func ValidateStudent(s model.Student) error {
	err := model.Validate(s)
	if err == nil {
		return nil
	}
	var fe *model.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Message: fe.Message}
	}
	return &ValidationError{Message: err.Error()}
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
