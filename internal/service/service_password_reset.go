package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/jwt-keychain/internal/crypto"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/store"
	"github.com/MKhiriev/jwt-keychain/models"
)

// RequestPasswordReset issues a reset token for the account owning the given
// email and mails it through the relay.
//
// The outcome is deliberately uniform: an unknown email, a delivery failure
// and a successful send all return nil. Only malformed input and storage
// failures surface as errors, neither of which reveals whether the address
// is registered.
//
// The issued token embeds a fingerprint of the current password hash, so it
// stops working the moment the password changes by any means.
func (a *authService) RequestPasswordReset(ctx context.Context, form models.ResetRequestForm) error {
	log := logger.FromContext(ctx)

	if fieldError := validateEmail(form.Email); fieldError != nil {
		return &ValidationError{Fields: []models.FieldError{*fieldError}}
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Respond exactly as if the mail had been sent.
			log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := a.tokens.IssueReset(foundUser.UserID, crypto.Fingerprint(foundUser.HashedPassword))
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("reset token creation failed")
		return err
	}

	if err := a.mailer.SendPasswordReset(ctx, foundUser.EmailAddress(), resetToken.SignedString); err != nil {
		// Delivery problems are an operations concern, not the requester's.
		log.Err(err).Int64("id", foundUser.UserID).Msg("password reset mail delivery failed")
		return nil
	}

	log.Info().Int64("id", foundUser.UserID).Msg("password reset mail sent")

	return nil
}

// ResetPasswordChange redeems a reset token and sets a new password.
//
// The token must be valid and unexpired, the account must still exist, the
// email in the form must match the account, and the password-hash fingerprint
// inside the token must match the stored hash. Any of those failing maps to
// the same [ErrTokenIsExpiredOrInvalid]; the caller learns nothing about
// which check failed.
//
// On success the password version is bumped, which retires every reset token
// issued before this change, including the one just redeemed.
func (a *authService) ResetPasswordChange(ctx context.Context, form models.PasswordResetForm) error {
	log := logger.FromContext(ctx)

	if form.Token == "" || form.Email == "" {
		return &ValidationError{Fields: []models.FieldError{{Field: "token", Message: "is required"}}}
	}

	if fieldError := validatePasswordStrength(form.Password); fieldError != nil {
		return &ValidationError{Fields: []models.FieldError{*fieldError}}
	}

	if form.Password != form.PasswordConfirmation {
		return ErrPasswordMismatch
	}

	token, err := a.tokens.ValidateReset(form.Token)
	if err != nil {
		return err
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(foundUser.Email), []byte(form.Email)) != 1 {
		return ErrTokenIsExpiredOrInvalid
	}

	// The token was issued against a specific password hash. If the password
	// changed since, or this token was already redeemed, the fingerprints no
	// longer match.
	fingerprint := crypto.Fingerprint(foundUser.HashedPassword)
	if subtle.ConstantTimeCompare([]byte(fingerprint), []byte(token.Claims.PasswordFingerprint)) != 1 {
		return ErrTokenIsExpiredOrInvalid
	}

	hashedPassword, err := a.hasher.Hash(form.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	update := models.UserUpdate{
		UserID:              foundUser.UserID,
		HashedPassword:      &hashedPassword,
		BumpPasswordVersion: true,
	}

	if _, err := a.userRepository.UpdateUser(ctx, update); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	log.Info().Int64("id", foundUser.UserID).Msg("password reset completed")

	return nil
}
