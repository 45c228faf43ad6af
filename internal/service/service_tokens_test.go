// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(refreshEnabled bool) config.Auth {
	cfg := config.Auth{
		SignKeys: map[string]string{
			"access-key-1":  "access-secret",
			"refresh-key-1": "refresh-secret",
			"reset-key-1":   "reset-secret",
		},
		APIAccessKid:      "access-key-1",
		APIAccessDuration: 15 * time.Minute,
		ResetKid:          "reset-key-1",
		ResetDuration:     time.Hour,
		TokenIssuer:       "jwt-keychain-test",
	}
	if refreshEnabled {
		cfg.RefreshKid = "refresh-key-1"
		cfg.RefreshDuration = 720 * time.Hour
	}
	return cfg
}

// ─────────────────────────────────────────────
// NewTokenGenerators
// ─────────────────────────────────────────────

func TestNewTokenGenerators_MissingSigner(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Auth)
	}{
		{"api-access kid absent from key set", func(c *config.Auth) { c.APIAccessKid = "ghost-kid" }},
		{"reset kid absent from key set", func(c *config.Auth) { c.ResetKid = "ghost-kid" }},
		{"refresh kid absent from key set", func(c *config.Auth) { c.RefreshKid = "ghost-kid" }},
		{"no api-access kid configured", func(c *config.Auth) { c.APIAccessKid = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAuthConfig(true)
			tt.mutate(&cfg)

			_, err := NewTokenGenerators(cfg)

			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrMissingSigner))
		})
	}
}

func TestNewTokenGenerators_RefreshOptional(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(false))

	require.NoError(t, err)
	assert.False(t, generators.RefreshEnabled())

	_, err = generators.IssueRefresh(1)
	assert.True(t, errors.Is(err, ErrRefreshNotSupported))

	_, err = generators.ValidateRefresh("any.token.string")
	assert.True(t, errors.Is(err, ErrRefreshNotSupported))
}

// ─────────────────────────────────────────────
// Issue / Validate round trips
// ─────────────────────────────────────────────

func TestTokenGenerators_APIAccessRoundTrip(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(true))
	require.NoError(t, err)

	issued, err := generators.IssueAPIAccess(42)
	require.NoError(t, err)

	parsed, err := generators.ValidateAPIAccess(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestTokenGenerators_RefreshRoundTrip(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(true))
	require.NoError(t, err)

	issued, err := generators.IssueRefresh(42)
	require.NoError(t, err)

	parsed, err := generators.ValidateRefresh(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestTokenGenerators_ResetCarriesFingerprint(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(false))
	require.NoError(t, err)

	issued, err := generators.IssueReset(7, "fingerprint-of-hash")
	require.NoError(t, err)

	parsed, err := generators.ValidateReset(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "fingerprint-of-hash", parsed.Claims.PasswordFingerprint)
}

func TestTokenGenerators_PurposesDoNotCross(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(true))
	require.NoError(t, err)

	refresh, err := generators.IssueRefresh(1)
	require.NoError(t, err)
	reset, err := generators.IssueReset(1, "fp")
	require.NoError(t, err)

	_, err = generators.ValidateAPIAccess(refresh.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))

	_, err = generators.ValidateAPIAccess(reset.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))

	_, err = generators.ValidateReset(refresh.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}

func TestTokenGenerators_GarbageRejected(t *testing.T) {
	generators, err := NewTokenGenerators(testAuthConfig(false))
	require.NoError(t, err)

	_, err = generators.ValidateAPIAccess("not.a.token")
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
