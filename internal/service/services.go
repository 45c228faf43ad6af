package service

import (
	"github.com/MKhiriev/jwt-keychain/internal/adapter"
	"github.com/MKhiriev/jwt-keychain/internal/crypto"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/store"
)

// Services bundles the application services handed to the transport layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires the service layer. Token generator construction fails
// when a configured key id has no signing secret, which aborts startup.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, tokens *TokenGenerators, mailer adapter.Mailer, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, tokens, mailer, logger),
	}
}
