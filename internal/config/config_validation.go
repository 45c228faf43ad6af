// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The signing key set must resolve a signer for the api-access and reset
// purposes, and for the refresh purpose when one is configured. Absence of a
// configured signer for a required purpose is a startup-time configuration
// error, not a runtime one.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Auth.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.APIAccessDuration <= 0 {
		return fmt.Errorf("%w: api-access token duration must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.ResetDuration <= 0 {
		return fmt.Errorf("%w: reset token duration must be positive", ErrInvalidAuthConfigs)
	}

	if err := cfg.Auth.resolveSigner(cfg.Auth.APIAccessKid, "api-access"); err != nil {
		return err
	}

	if err := cfg.Auth.resolveSigner(cfg.Auth.ResetKid, "reset"); err != nil {
		return err
	}

	if cfg.Auth.RefreshEnabled() {
		if cfg.Auth.RefreshDuration <= 0 {
			return fmt.Errorf("%w: refresh token duration must be positive", ErrInvalidAuthConfigs)
		}
		if err := cfg.Auth.resolveSigner(cfg.Auth.RefreshKid, "refresh"); err != nil {
			return err
		}
	}

	if cfg.Auth.BCryptCost < 0 {
		return fmt.Errorf("%w: bcrypt cost cannot be negative", ErrInvalidAuthConfigs)
	}

	return nil
}

// resolveSigner checks that kid is present and maps to a non-empty secret in
// the signing key set.
func (a Auth) resolveSigner(kid, purpose string) error {
	if kid == "" {
		return fmt.Errorf("%w: no key id configured for purpose %q", ErrMissingSigner, purpose)
	}

	if a.SignKeys[kid] == "" {
		return fmt.Errorf("%w: kid %q (purpose %q)", ErrMissingSigner, kid, purpose)
	}

	return nil
}
