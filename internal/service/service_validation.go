package service

import (
	"net/mail"
	"unicode"

	"github.com/MKhiriev/jwt-keychain/models"
)

const minPasswordLength = 8

// validateUserForm checks a user form against the field rules.
//
// In [models.ValidateAll] mode every field a complete profile needs must be
// present and valid (registration). In [models.ValidateNonNil] mode only the
// supplied fields are checked (profile update). The name is optional in both
// modes; only its content is checked when present.
func validateUserForm(form models.UserForm, mode models.ValidationMode) []models.FieldError {
	var fieldErrors []models.FieldError

	switch {
	case form.Email != nil:
		if err := validateEmail(*form.Email); err != nil {
			fieldErrors = append(fieldErrors, *err)
		}
	case mode == models.ValidateAll:
		fieldErrors = append(fieldErrors, models.FieldError{Field: models.FieldEmail, Message: "is required"})
	}

	switch {
	case form.Password != nil:
		if err := validatePasswordStrength(*form.Password); err != nil {
			fieldErrors = append(fieldErrors, *err)
		}
		if form.PasswordRepeat == nil {
			fieldErrors = append(fieldErrors, models.FieldError{Field: models.FieldPasswordRepeat, Message: "is required"})
		}
	case mode == models.ValidateAll:
		fieldErrors = append(fieldErrors, models.FieldError{Field: models.FieldPassword, Message: "is required"})
	}

	return fieldErrors
}

func validateEmail(email string) *models.FieldError {
	if email == "" {
		return &models.FieldError{Field: models.FieldEmail, Message: "is required"}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &models.FieldError{Field: models.FieldEmail, Message: "is not a valid email address"}
	}

	return nil
}

// validatePasswordStrength enforces the password policy: at least eight
// characters containing an upper-case letter, a lower-case letter and a digit.
func validatePasswordStrength(password string) *models.FieldError {
	if len(password) < minPasswordLength {
		return &models.FieldError{Field: models.FieldPassword, Message: "must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return &models.FieldError{Field: models.FieldPassword, Message: "must contain an upper-case letter, a lower-case letter and a digit"}
	}

	return nil
}
