// Package validators performs field-level validation of inbound request
// payloads. Each failed check is reported with the offending field name so
// the HTTP layer can return detailed per-field errors.
package validators

import (
	"net/mail"
	"strings"

	"github.com/mlevchuk/noteapp/models"
)

// Field name constants used in validation error details.
const (
	// FieldEmail targets the unique email identifier of a user.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration or
	// login request.
	FieldPassword = "password"

	// FieldTitle targets the title of a note.
	FieldTitle = "title"

	// FieldContent targets the body of a note.
	FieldContent = "content"
)

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 6

// AuthValidator validates registration and login payloads.
type AuthValidator struct{}

// NewAuthValidator constructs an AuthValidator.
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// ValidateRegister checks a registration payload: the email must be
// syntactically valid and the password at least [MinPasswordLength]
// characters. Returns a *ValidationError listing every violated field,
// or nil when the payload is valid.
func (v *AuthValidator) ValidateRegister(req models.RegisterRequest) error {
	var fields []FieldError

	if !isValidEmail(req.Email) {
		fields = append(fields, FieldError{Field: FieldEmail, Message: "Invalid email"})
	}
	if len(req.Password) < MinPasswordLength {
		fields = append(fields, FieldError{Field: FieldPassword, Message: "Password must contain at least 6 characters"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateLogin checks a login payload: the email must be syntactically
// valid and the password non-empty. Returns a *ValidationError listing
// every violated field, or nil when the payload is valid.
func (v *AuthValidator) ValidateLogin(req models.LoginRequest) error {
	var fields []FieldError

	if !isValidEmail(req.Email) {
		fields = append(fields, FieldError{Field: FieldEmail, Message: "Invalid email"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: FieldPassword, Message: "Password is required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// NoteValidator validates note create and update payloads.
type NoteValidator struct{}

// NewNoteValidator constructs a NoteValidator.
func NewNoteValidator() *NoteValidator {
	return &NoteValidator{}
}

// ValidateNote checks that both title and content are non-empty.
// Returns a *ValidationError listing every violated field, or nil when the
// payload is valid.
func (v *NoteValidator) ValidateNote(req models.NoteRequest) error {
	var fields []FieldError

	if req.Title == "" {
		fields = append(fields, FieldError{Field: FieldTitle, Message: "Title is required"})
	}
	if req.Content == "" {
		fields = append(fields, FieldError{Field: FieldContent, Message: "Content is required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// isValidEmail reports whether s is a bare, syntactically valid email
// address. Addresses with display names ("Bob <bob@example.com>") are
// rejected: only the plain addr-spec form is accepted.
func isValidEmail(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}

	return addr.Address == trimmed
}
