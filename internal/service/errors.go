package service

import (
	"errors"

	"github.com/MKhiriev/jwt-keychain/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordMismatch    = errors.New("password and confirmation do not match")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRefreshNotSupported     = errors.New("refresh tokens are not supported")

	ErrOldPasswordRequired  = errors.New("old password is required")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	ErrUserNotFound = errors.New("user not found")
)

// ValidationError aggregates per-field validation failures. It unwraps to
// [ErrInvalidDataProvided] so callers can match the whole class with
// [errors.Is] and still reach the individual fields with [errors.As].
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	msg := ErrInvalidDataProvided.Error()
	for _, f := range v.Fields {
		msg += "; " + f.Error()
	}
	return msg
}

// Unwrap ties every ValidationError to the [ErrInvalidDataProvided] class.
func (v *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}
