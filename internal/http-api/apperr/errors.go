// Package apperr defines the error types handlers translate into HTTP
// responses. Services return these; anything else becomes a 500.
package apperr

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field from one request so the
// client sees all problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError means a uniqueness rule was violated (duplicate email,
// watched pair already present, exact duplicate movie name).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DuplicateNameError rejects a movie whose name scores at or above the
// similarity threshold against an existing title.
type DuplicateNameError struct {
	Target string
	Score  float64
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name is too similar to %q (%d%%)", e.Target, e.Percent())
}

// Percent is the score rounded to a whole percentage for display.
func (e *DuplicateNameError) Percent() int {
	return int(math.Round(e.Score * 100))
}

// Validation builds a ValidationError from field/message pairs.
func Validation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// Conflict builds a ConflictError with the given message.
func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
