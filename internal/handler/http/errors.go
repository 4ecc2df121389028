package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// User-visible response messages, matching the API contract exactly.
const (
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidNoteID      = "Invalid note ID"
	msgTokenMissing       = "Authorization token missing"
	msgTokenInvalid       = "Invalid or expired token"
	msgInvalidCredentials = "Invalid credentials"
	msgEmailInUse         = "Email already in use"
	msgNoteNotFound       = "Note not found"
	msgNoteForbidden      = "You do not have access to this note"
	msgNoteDeleted        = "Note deleted successfully"
	msgFavoriteMigration  = "Favorite flag is not available: a schema migration adding the notes.favorite column is required"
)
