package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/jwt-keychain/models"
)

// UserRepository is the identity-store contract consumed by the auth
// service. All durable user state lives behind this interface.
//
// Implementations must enforce email uniqueness among non-deleted users
// atomically (e.g. via a unique index) — the check-then-act sequence at the
// service layer alone cannot prevent two concurrent registrations with the
// same email.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. Returns [ErrEmailAlreadyExists] when
	// a non-deleted user with the same email exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a non-deleted user by email.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a non-deleted user by id.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial mutation and returns the updated record.
	// Returns [ErrEmailAlreadyExists] when an email change collides with
	// another non-deleted user, and [ErrNoUserWasFound] when the target row
	// does not exist or is soft-deleted.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// EmailInUseByAnother reports whether a non-deleted user other than
	// excludeUserID already owns the given email.
	EmailInUseByAnother(ctx context.Context, email string, excludeUserID int64) (bool, error)
}
