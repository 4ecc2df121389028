package http

import (
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/service"
)

// Handler holds the dependencies shared by all HTTP handlers and middleware.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set over the given services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
