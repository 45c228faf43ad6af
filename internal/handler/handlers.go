package handler

import (
	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/MKhiriev/jwt-keychain/internal/handler/http"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/service"
)

// Handlers groups the transport handlers of the application. The service is
// HTTP-only, but transports stay behind this struct so the composition root
// does not depend on a concrete one.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers from the server configuration.
// The refresh route is wired only when refreshEnabled is set; with refresh
// disabled the route does not exist at all.
func NewHandlers(services *service.Services, cfg config.Server, refreshEnabled bool, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, refreshEnabled, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
