package http

import (
	"github.com/MKhiriev/go-car-share/internal/config"
	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/service"
)

type Handler struct {
	services *service.Services

	// allowAnonymousWrites removes the auth middleware from car-mutating
	// routes. Off by default.
	allowAnonymousWrites bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:             services,
		allowAnonymousWrites: cfg.AllowAnonymousWrites,
		logger:               logger,
	}
}
