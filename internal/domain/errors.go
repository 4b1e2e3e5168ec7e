package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Common field-level validation messages.
const (
	MsgRequired = "is required"
	MsgBlank    = "cannot be empty"
)

// HumanMessager is implemented by errors that carry a message suitable for
// showing to an end user verbatim.
type HumanMessager interface {
	HumanMessage() string
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Message, when set, is the user-facing summary (e.g. "Title is required").
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HumanMessage returns Message, or the first field failure when no summary
// was provided.
func (e *ValidationError) HumanMessage() string {
	if e.Message != "" {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	if len(keys) == 0 {
		return "Invalid request"
	}
	sort.Strings(keys)
	return keys[0] + " " + e.Fields[keys[0]]
}

// NewValidationError builds a single-field ValidationError with a summary.
func NewValidationError(field, msg, summary string) *ValidationError {
	return &ValidationError{
		Fields:  map[string]string{field: msg},
		Message: summary,
	}
}

// NotFoundError reports that an entity of the given kind does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", strings.ToLower(e.Entity), e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// HumanMessage returns e.g. "Todo not found".
func (e *NotFoundError) HumanMessage() string {
	return e.Entity + " not found"
}
