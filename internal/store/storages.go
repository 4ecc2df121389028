package store

import (
	"github.com/mlevchuk/noteapp/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// It is constructed once at startup and injected into the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages constructs all repositories over the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
