package service

import (
	"context"

	"github.com/mlevchuk/noteapp/models"
)

// AuthService handles account registration, credential verification, and
// the JWT token lifecycle.
type AuthService interface {
	// Register creates a new account from the given payload and returns
	// its public representation (the password hash is never exposed).
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and issues a signed bearer token.
	// Unknown email and wrong password are indistinguishable to the
	// caller: both fail with ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ParseToken validates a raw bearer token string and returns the
	// decoded token carrying the owner identifier.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService executes note operations on behalf of an authenticated user.
// Every operation takes the verified owner identifier extracted by the
// authentication middleware; a non-positive identifier fails with
// ErrNoAuthenticatedUser.
type NoteService interface {
	// Create persists a new note owned by userID with favorite=false.
	Create(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)

	// List returns all notes owned by userID, newest first.
	List(ctx context.Context, userID int64) ([]models.Note, error)

	// Update overwrites title/content of the identified note after the
	// existence and ownership checks pass.
	Update(ctx context.Context, userID, noteID int64, req models.NoteRequest) (models.Note, error)

	// Delete permanently removes the identified note after the existence
	// and ownership checks pass.
	Delete(ctx context.Context, userID, noteID int64) error

	// ToggleFavorite flips the favorite flag of the identified note after
	// the existence and ownership checks pass, returning the updated note.
	ToggleFavorite(ctx context.Context, userID, noteID int64) (models.Note, error)
}
