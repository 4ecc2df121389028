package models

import "time"

// Note is a user-owned text record with an optional favorite mark.
//
// Every note belongs to exactly one user; only the owner may read,
// mutate, or delete it. Ownership is set at creation time and never
// changes afterwards.
type Note struct {
	// NoteID is the internal unique identifier of the note,
	// assigned by the database on creation.
	NoteID int64 `json:"id"`

	// Title is a short non-empty caption of the note.
	Title string `json:"title"`

	// Content is the non-empty body of the note.
	Content string `json:"content"`

	// Favorite marks the note as pinned by its owner. Defaults to false.
	Favorite bool `json:"favorite"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every title/content edit and favorite toggle.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
