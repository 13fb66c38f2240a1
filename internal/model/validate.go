package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes a single invalid field on a Student.
type FieldError struct {
	Field   string // "roll number", "name", "age" or "course"
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks a record entered by a user before it is stored.
// Stored records are never validated on read.
func Validate(s Student) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	// Report the first failing field only.
	fe := verrs[0]
	return &FieldError{
		Field:   fieldLabel(fe.Field()),
		Message: ruleMessage(fe.Tag()),
	}
}

func fieldLabel(field string) string {
	switch field {
	case "RollNumber":
		return "roll number"
	default:
		return strings.ToLower(field)
	}
}

func ruleMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "excludes":
		return "must not contain " + quoteDelimiter()
	case "gte":
		return "must not be negative"
	default:
		return "failed " + tag + " check"
	}
}

func quoteDelimiter() string {
	return fmt.Sprintf("%q", Delimiter)
}
