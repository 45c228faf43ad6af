package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/MKhiriev/jwt-keychain/internal/utils"
	"github.com/MKhiriev/jwt-keychain/models"
)

// tokenGenerator binds one token purpose to its resolved signing secret and
// lifetime. The key id is kept only for diagnostics; signing uses the secret.
type tokenGenerator struct {
	purpose  models.TokenPurpose
	kid      string
	secret   string
	duration time.Duration
}

// TokenGenerators holds one generator per configured token purpose. The set
// is resolved from the signing key map once at startup; a purpose whose key
// id has no secret is a construction error, never a request-time one.
//
// The refresh generator is optional. When absent, IssueRefresh and
// ValidateRefresh fail with [ErrRefreshNotSupported].
type TokenGenerators struct {
	issuer    string
	apiAccess tokenGenerator
	refresh   *tokenGenerator
	reset     tokenGenerator
}

// NewTokenGenerators resolves the signing key set from cfg into a generator
// per purpose. Every configured key id must map to a non-empty secret;
// otherwise construction fails with [config.ErrMissingSigner].
func NewTokenGenerators(cfg config.Auth) (*TokenGenerators, error) {
	apiAccess, err := resolveGenerator(cfg, models.PurposeAPIAccess, cfg.APIAccessKid, cfg.APIAccessDuration)
	if err != nil {
		return nil, err
	}

	reset, err := resolveGenerator(cfg, models.PurposeReset, cfg.ResetKid, cfg.ResetDuration)
	if err != nil {
		return nil, err
	}

	generators := &TokenGenerators{
		issuer:    cfg.TokenIssuer,
		apiAccess: apiAccess,
		reset:     reset,
	}

	if cfg.RefreshEnabled() {
		refresh, err := resolveGenerator(cfg, models.PurposeRefresh, cfg.RefreshKid, cfg.RefreshDuration)
		if err != nil {
			return nil, err
		}
		generators.refresh = &refresh
	}

	return generators, nil
}

func resolveGenerator(cfg config.Auth, purpose models.TokenPurpose, kid string, duration time.Duration) (tokenGenerator, error) {
	if kid == "" {
		return tokenGenerator{}, fmt.Errorf("%w: no key id configured for purpose %q", config.ErrMissingSigner, purpose)
	}

	secret := cfg.SignKeys[kid]
	if secret == "" {
		return tokenGenerator{}, fmt.Errorf("%w: kid %q (purpose %q)", config.ErrMissingSigner, kid, purpose)
	}

	return tokenGenerator{
		purpose:  purpose,
		kid:      kid,
		secret:   secret,
		duration: duration,
	}, nil
}

// RefreshEnabled reports whether a refresh generator is configured.
func (t *TokenGenerators) RefreshEnabled() bool {
	return t.refresh != nil
}

// IssueAPIAccess creates a short-lived api-access token for the given user.
func (t *TokenGenerators) IssueAPIAccess(userID int64) (models.Token, error) {
	return t.issue(t.apiAccess, userID, "")
}

// IssueRefresh creates a long-lived refresh token for the given user.
// Returns [ErrRefreshNotSupported] when no refresh signer is configured.
func (t *TokenGenerators) IssueRefresh(userID int64) (models.Token, error) {
	if t.refresh == nil {
		return models.Token{}, ErrRefreshNotSupported
	}
	return t.issue(*t.refresh, userID, "")
}

// IssueReset creates a single-use password-reset token. The fingerprint of
// the current password hash is embedded so the token dies with the password
// it was issued against.
func (t *TokenGenerators) IssueReset(userID int64, passwordFingerprint string) (models.Token, error) {
	return t.issue(t.reset, userID, passwordFingerprint)
}

// ValidateAPIAccess checks a raw api-access token string and returns the
// decoded token. Tokens of any other purpose are rejected.
func (t *TokenGenerators) ValidateAPIAccess(tokenString string) (models.Token, error) {
	return t.validate(t.apiAccess, tokenString)
}

// ValidateRefresh checks a raw refresh token string.
// Returns [ErrRefreshNotSupported] when no refresh signer is configured.
func (t *TokenGenerators) ValidateRefresh(tokenString string) (models.Token, error) {
	if t.refresh == nil {
		return models.Token{}, ErrRefreshNotSupported
	}
	return t.validate(*t.refresh, tokenString)
}

// ValidateReset checks a raw password-reset token string.
func (t *TokenGenerators) ValidateReset(tokenString string) (models.Token, error) {
	return t.validate(t.reset, tokenString)
}

func (t *TokenGenerators) issue(g tokenGenerator, userID int64, fingerprint string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.issuer, userID, g.purpose, fingerprint, g.duration, g.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w (purpose %q, kid %q): %w", ErrTokenCreationFailed, g.purpose, g.kid, err)
	}
	return token, nil
}

func (t *TokenGenerators) validate(g tokenGenerator, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, g.secret, t.issuer, g.purpose)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
