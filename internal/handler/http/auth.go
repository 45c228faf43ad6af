package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/utils"
	"github.com/MKhiriev/jwt-keychain/models"
)

const statusOK = "ok"

// register handles POST /api/users. It creates an account from a complete
// user form and responds 201 with the stored user and a fresh token set.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.UserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Register(ctx, form)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing registration response")
	}
}

// login handles POST /api/users/login. It verifies credentials and responds
// with the user and a fresh token set. Unknown email and wrong password are
// indistinguishable in the response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// logOut handles GET /api/users/logout for an authenticated user.
func (h *Handler) logOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.LogOut(ctx, userID); err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing logout response")
	}
}

// regenerate handles PATCH /api/users/token/regenerate. The refresh token
// arrives in the Authorization header and is validated by the service; the
// access-token middleware is deliberately not involved.
func (h *Handler) regenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	refreshToken, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	response, err := h.services.AuthService.Regenerate(ctx, refreshToken)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing regenerate response")
	}
}

// me handles GET /api/users/me for an authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile response")
	}
}

// update handles PATCH /api/users for an authenticated user. Any subset of
// profile fields may be supplied; email and password changes additionally
// require the current password in the form.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var form models.UserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Update(ctx, userID, form)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing update response")
	}
}

// requestPasswordReset handles POST /api/users/reset-password/request.
// The response is the same whether or not the email belongs to an account.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.ResetRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(ctx, form); err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing reset request response")
	}
}

// resetPasswordChange handles POST /api/users/reset-password/change.
func (h *Handler) resetPasswordChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.PasswordResetForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPasswordChange(ctx, form); err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing reset change response")
	}
}
