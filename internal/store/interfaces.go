package store

import (
	"context"

	"github.com/mlevchuk/noteapp/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email, or
	// ErrUserNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes and executes all note-level operations.
// Ownership decisions are made in the service layer; the repository only
// stores and retrieves.
type NoteRepository interface {
	// CreateNote inserts a new note and returns it with server-assigned
	// fields (NoteID, timestamps) populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNotesByUser returns all notes owned by userID ordered by creation
	// time descending. On schemas without the favorite column, favorite is
	// synthesized as false for every returned note.
	GetNotesByUser(ctx context.Context, userID int64) ([]models.Note, error)

	// GetNoteByID returns the note with the given ID, or ErrNoteNotFound.
	GetNoteByID(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote overwrites title and content of the note identified by
	// note.NoteID, refreshes its update timestamp, and returns the updated
	// note. Returns ErrNoteNotFound when the note does not exist.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the note permanently.
	// Returns ErrNoteNotFound when the note does not exist.
	DeleteNote(ctx context.Context, noteID int64) error

	// SetFavorite sets the favorite flag of the note and returns the
	// updated note. Returns ErrFavoriteNotSupported on schemas without the
	// favorite column, and ErrNoteNotFound when the note does not exist.
	SetFavorite(ctx context.Context, noteID int64, favorite bool) (models.Note, error)
}
