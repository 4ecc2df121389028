package service

import (
	"github.com/mlevchuk/noteapp/internal/config"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/store"
)

// Services bundles every application service for injection into the
// transport layer.
type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices constructs all services over the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
