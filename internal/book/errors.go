package book

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidArgument is returned for a nil book or an empty ISBN.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a book with the same ISBN already exists.
	ErrConflict = errors.New("a book with the same ISBN already exists")
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ErrInvalidISBN is returned by the Service when an ISBN fails the format check.
var ErrInvalidISBN = &ValidationError{Message: "invalid ISBN format"}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError describes input that was rejected before reaching the
// repository.
type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return e.Message + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Kind maps an error to a stable code for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}
