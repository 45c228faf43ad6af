package http

import (
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/service"
)

type Handler struct {
	services *service.Services

	// refreshEnabled controls whether the token regeneration route exists.
	refreshEnabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, refreshEnabled bool, logger *logger.Logger) *Handler {
	logger.Info().Bool("refresh", refreshEnabled).Msg("http handler created")
	return &Handler{
		services:       services,
		refreshEnabled: refreshEnabled,
		logger:         logger,
	}
}
