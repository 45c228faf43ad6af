package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/jwt-keychain/internal/service"
	"github.com/MKhiriev/jwt-keychain/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"validation error unwraps to invalid data", &service.ValidationError{}, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"old password incorrect", service.ErrOldPasswordIncorrect, http.StatusUnauthorized},
		{"email conflict", service.ErrEmailAlreadyExists, http.StatusConflict},
		{"store email conflict", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"refresh not supported", service.ErrRefreshNotSupported, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("context: %w", service.ErrInvalidCredentials), http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
