package service

import (
	"context"

	"github.com/MKhiriev/jwt-keychain/models"
)

// AuthService is the application core of the authentication keychain. It owns
// registration, credential verification, token lifecycle, profile updates and
// the password-reset flow.
//
// All methods return sentinel errors from this package (or wrapped storage
// errors) so that the transport layer can map outcomes to statuses without
// inspecting error strings.
type AuthService interface {
	// Register creates a new user account from a complete form and returns
	// the stored user together with a fresh token set.
	Register(ctx context.Context, form models.UserForm) (models.AuthResponse, error)

	// Login verifies credentials and returns the user with a fresh token set.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// LogOut ends the session of the given user. Tokens are stateless, so
	// this records the event; issued tokens stay valid until they expire.
	LogOut(ctx context.Context, userID int64) error

	// Regenerate exchanges a valid refresh token for a new api-access token.
	// Returns [ErrRefreshNotSupported] when no refresh signer is configured.
	Regenerate(ctx context.Context, refreshToken string) (models.TokenResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID int64) (models.User, error)

	// Update applies a partial profile change. Changing the email or the
	// password requires the current password in the form.
	Update(ctx context.Context, userID int64, form models.UserForm) (models.User, error)

	// Authenticate validates a raw api-access token string and returns the
	// decoded token. Used by the request middleware.
	Authenticate(ctx context.Context, accessToken string) (models.Token, error)

	// RequestPasswordReset issues a reset token and mails it to the account
	// owner. The outcome is identical whether or not the email is registered.
	RequestPasswordReset(ctx context.Context, form models.ResetRequestForm) error

	// ResetPasswordChange redeems a reset token and sets a new password.
	// A token issued before the last password change is rejected.
	ResetPasswordChange(ctx context.Context, form models.PasswordResetForm) error
}
