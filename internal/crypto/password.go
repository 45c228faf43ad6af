// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential-hashing primitives of the
// jwt-keychain service: bcrypt password digests and the hash fingerprint
// embedded in password-reset tokens.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher is the bcrypt-backed implementation of [PasswordHasher].
type passwordHasher struct {
	// cost is the bcrypt work factor. Stored in the struct so it can be
	// tuned per deployment without touching call sites.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. A cost of zero selects bcrypt.DefaultCost. Returns an error if the
// cost lies outside the range supported by the bcrypt implementation.
func NewPasswordHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &passwordHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher]. Each call produces a fresh salt, so
// hashing the same password twice yields different digests.
func (p *passwordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. A wrong password yields (false, nil);
// only a digest that bcrypt cannot parse yields an error.
func (p *passwordHasher) Verify(password, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password against stored hash: %w", err)
	}
}

// Fingerprint returns a hex-encoded SHA-256 digest of a stored password
// hash. Reset tokens embed this fingerprint instead of the hash itself: the
// comparison semantics are identical (any password change alters the
// fingerprint), but the bcrypt digest never travels inside a token that is
// signed yet not encrypted.
func Fingerprint(hashedPassword string) string {
	sum := sha256.Sum256([]byte(hashedPassword))
	return hex.EncodeToString(sum[:])
}
