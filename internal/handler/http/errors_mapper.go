package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/service"
	"github.com/MKhiriev/jwt-keychain/internal/store"
	"github.com/MKhiriev/jwt-keychain/internal/utils"
	"github.com/MKhiriev/jwt-keychain/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrOldPasswordRequired:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrOldPasswordIncorrect:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmailAlreadyExists:      http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrRefreshNotSupported:     http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps a service error to an HTTP status and writes the JSON
// error body. Per-field validation details travel along when present;
// everything mapping to 500 is reported with a generic message so internal
// failures never leak detail to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		response.Error = http.StatusText(http.StatusInternalServerError)
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		response.Error = service.ErrInvalidDataProvided.Error()
		response.Fields = validationErr.Fields
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
