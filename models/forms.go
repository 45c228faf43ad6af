package models

// Form field keys shared between input forms, validation results, and the
// users table. Kept as constants so transport, validation, and persistence
// agree on naming.
const (
	FieldEmail          = "email"
	FieldName           = "name"
	FieldPassword       = "password"
	FieldPasswordRepeat = "passwordRepeat"
	FieldOldPassword    = "oldPassword"
)

// ValidationMode selects which fields of a form are checked.
type ValidationMode int

const (
	// ValidateAll requires every field to be present and valid. Used on
	// registration, where a complete user profile is mandatory.
	ValidateAll ValidationMode = iota

	// ValidateNonNil checks only fields that were supplied, leaving absent
	// ones untouched. Used on profile update, where any subset of fields may
	// change.
	ValidateNonNil
)

// UserForm is the transient input for registration and profile update.
// Pointer fields distinguish "absent" from "empty" so that update requests
// can modify any subset of the profile. Forms are validated before use and
// never persisted.
type UserForm struct {
	Email          *string `json:"email"`
	Name           *string `json:"name"`
	Password       *string `json:"password"`
	PasswordRepeat *string `json:"passwordRepeat"`

	// OldPassword must be supplied and verified when the email address or
	// the password is being changed.
	OldPassword *string `json:"oldPassword"`
}

// Credentials is the transient login input.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequestForm is the transient input for requesting a password-reset
// mail. Only the email is needed; the outward response never reveals whether
// the address belongs to an account.
type ResetRequestForm struct {
	Email string `json:"email"`
}

// PasswordResetForm is the transient input for redeeming a reset token.
type PasswordResetForm struct {
	Token                string `json:"token"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// FieldError describes a single failed validation check, keyed by the form
// field that caused it. A slice of FieldError is the structured result of
// form validation, decoupled from transport framing.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (f FieldError) Error() string {
	return f.Field + ": " + f.Message
}
