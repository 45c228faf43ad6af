package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced among non-deleted users only.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown by API consumers.
	Name string `json:"name"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and it is never
	// serialized outward.
	HashedPassword string `json:"-"`

	// PasswordVersion is incremented on every password change and is never
	// decremented. Outstanding password-reset tokens become invalid after a
	// change because their embedded hash fingerprint stops matching.
	PasswordVersion int64 `json:"passwordVersion"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or credential change.
	UpdatedAt time.Time `json:"updated_at"`

	// DeletedAt marks the account as soft-deleted when non-nil. Soft-deleted
	// users are invisible to lookups and do not participate in the email
	// uniqueness constraint.
	DeletedAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// EmailAddress is the recipient identity handed to the mail collaborator.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// EmailAddress returns the user's mail recipient identity.
func (u User) EmailAddress() EmailAddress {
	return EmailAddress{Name: u.Name, Address: u.Email}
}
