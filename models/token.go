package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose partitions issued tokens by the operation class they
// authorize. Each purpose is bound to its own signer and claim template.
type TokenPurpose string

const (
	// PurposeAPIAccess authorizes all secured API operations. Short-lived.
	PurposeAPIAccess TokenPurpose = "api-access"

	// PurposeRefresh is exchanged for a fresh api-access token without
	// re-authenticating with a password. Longer-lived and optional: a
	// deployment may be configured without refresh support.
	PurposeRefresh TokenPurpose = "refresh"

	// PurposeReset authorizes exactly one password change. Carries a
	// fingerprint of the password hash current at issuance time.
	PurposeReset TokenPurpose = "reset"
)

// Claims is the JWT payload issued and validated by the token generator set.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, iss) with:
//   - Purpose — fixed per generator, checked on validation so a token issued
//     for one purpose can never pass as another even when two purposes share
//     a signing key;
//   - PasswordFingerprint — reset tokens only: a SHA-256 fingerprint of the
//     user's hashed password at issuance. A reset token is honoured only
//     while this fingerprint still matches the stored hash, which invalidates
//     every outstanding reset token the moment the password changes.
type Claims struct {
	jwt.RegisteredClaims

	Purpose TokenPurpose `json:"prp"`

	PasswordFingerprint string `json:"pwd,omitempty"`
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers or response bodies.
//
// UserID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during validation to avoid repeated string-to-int parsing.
type Token struct {
	// Claims is the decoded payload of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
