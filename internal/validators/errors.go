package validators

import (
	"errors"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	// Field is the JSON field name the message refers to.
	Field string `json:"field"`

	// Message is a human-readable description of the violation.
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a payload.
// It implements the error interface so it can travel through the service
// layer and be unwrapped at the HTTP boundary via [AsValidationError].
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface by joining all field messages.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

// AsValidationError unwraps err as a *ValidationError.
// Returns the typed error and true when err (or anything it wraps) carries
// field-level validation details.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}
