package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/jwt-keychain/internal/adapter"
	"github.com/MKhiriev/jwt-keychain/internal/crypto"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/store"
	"github.com/MKhiriev/jwt-keychain/models"
)

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, JWT token lifecycle
// and the password-reset flow, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// mutate user records.
	userRepository store.UserRepository

	// hasher derives and verifies bcrypt password digests.
	hasher crypto.PasswordHasher

	// tokens holds the per-purpose token generator set resolved at startup.
	tokens *TokenGenerators

	// mailer delivers password-reset mail through the external relay.
	mailer adapter.Mailer

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository,
// password hasher, token generator set and mailer.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens *TokenGenerators, mailer adapter.Mailer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		mailer:         mailer,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The form is validated in full: email format, password strength and the
// password confirmation must all pass. The password is bcrypt-hashed before
// persistence; the plain text is never stored or logged.
//
// Returns the persisted user with a fresh token set, or:
//   - [*ValidationError] (class [ErrInvalidDataProvided]) on field failures.
//   - [ErrPasswordMismatch] when password and confirmation differ.
//   - [ErrEmailAlreadyExists] when the email belongs to a live account.
//   - A wrapped storage or signing error otherwise.
func (a *authService) Register(ctx context.Context, form models.UserForm) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validateUserForm(form, models.ValidateAll); len(fieldErrors) > 0 {
		log.Error().Any("fields", fieldErrors).Msg("invalid registration form")
		return models.AuthResponse{}, &ValidationError{Fields: fieldErrors}
	}

	if *form.Password != *form.PasswordRepeat {
		return models.AuthResponse{}, ErrPasswordMismatch
	}

	hashedPassword, err := a.hasher.Hash(*form.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:          *form.Email,
		HashedPassword: hashedPassword,
	}
	if form.Name != nil {
		user.Name = *form.Name
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResponse{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	return a.authResponse(registeredUser)
}

// Login authenticates an existing user.
//
// Unknown email and wrong password both map to [ErrInvalidCredentials];
// nothing in the outcome reveals whether the account exists.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := a.hasher.Verify(credentials.Password, foundUser.HashedPassword)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.AuthResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	return a.authResponse(foundUser)
}

// LogOut records the end of a session. Tokens are stateless, so nothing is
// revoked server-side; the access token stays valid until it expires.
func (a *authService) LogOut(ctx context.Context, userID int64) error {
	logger.FromContext(ctx).Info().Int64("id", userID).Msg("user logged out")
	return nil
}

// Regenerate exchanges a valid refresh token for a new api-access token.
//
// The owning account must still exist; a refresh token for a deleted user is
// indistinguishable from an invalid one.
func (a *authService) Regenerate(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if !a.tokens.RefreshEnabled() {
		return models.TokenResponse{}, ErrRefreshNotSupported
	}

	token, err := a.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return models.TokenResponse{}, err
	}

	if _, err := a.userRepository.FindUserByID(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenResponse{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.TokenResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	accessToken, err := a.tokens.IssueAPIAccess(token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("access token regeneration failed")
		return models.TokenResponse{}, err
	}

	return models.TokenResponse{AccessToken: accessToken.SignedString}, nil
}

// Me returns the profile of the authenticated user.
func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// Update applies a partial profile change.
//
// Changing the email or the password is a sensitive operation and requires
// the current password in the form. A password change also requires the
// confirmation field and bumps the password version, which retires any
// outstanding reset tokens.
func (a *authService) Update(ctx context.Context, userID int64, form models.UserForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validateUserForm(form, models.ValidateNonNil); len(fieldErrors) > 0 {
		log.Error().Any("fields", fieldErrors).Msg("invalid update form")
		return models.User{}, &ValidationError{Fields: fieldErrors}
	}

	currentUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	emailChanged := form.Email != nil && *form.Email != currentUser.Email
	passwordChanged := form.Password != nil

	if emailChanged || passwordChanged {
		if form.OldPassword == nil || *form.OldPassword == "" {
			return models.User{}, ErrOldPasswordRequired
		}
		match, err := a.hasher.Verify(*form.OldPassword, currentUser.HashedPassword)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("old password verification failed")
			return models.User{}, fmt.Errorf("old password verification failed: %w", err)
		}
		if !match {
			return models.User{}, ErrOldPasswordIncorrect
		}
	}

	if passwordChanged && *form.Password != *form.PasswordRepeat {
		return models.User{}, ErrPasswordMismatch
	}

	update := models.UserUpdate{UserID: userID}

	if emailChanged {
		inUse, err := a.userRepository.EmailInUseByAnother(ctx, *form.Email, userID)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("email uniqueness check failed")
			return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
		}
		if inUse {
			return models.User{}, ErrEmailAlreadyExists
		}
		update.Email = form.Email
	}

	if form.Name != nil {
		update.Name = form.Name
	}

	if passwordChanged {
		hashedPassword, err := a.hasher.Hash(*form.Password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.HashedPassword = &hashedPassword
		update.BumpPasswordVersion = true
	}

	if update.Empty() {
		return currentUser, nil
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	log.Info().Int64("id", userID).Bool("passwordChanged", passwordChanged).Msg("user updated")

	return updatedUser, nil
}

// Authenticate validates a raw api-access token string.
//
// Any validation failure (expired, wrong issuer, wrong purpose, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Token, error) {
	return a.tokens.ValidateAPIAccess(accessToken)
}

// authResponse bundles a user with a freshly issued token set. The refresh
// token is present only when a refresh signer is configured.
func (a *authService) authResponse(user models.User) (models.AuthResponse, error) {
	accessToken, err := a.tokens.IssueAPIAccess(user.UserID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	response := models.AuthResponse{
		User:        user,
		AccessToken: accessToken.SignedString,
	}

	if a.tokens.RefreshEnabled() {
		refreshToken, err := a.tokens.IssueRefresh(user.UserID)
		if err != nil {
			return models.AuthResponse{}, err
		}
		response.RefreshToken = refreshToken.SignedString
	}

	return response, nil
}
