package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration used as a base fixture.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			SignKeys: map[string]string{
				"access-key-1":  "access-secret",
				"refresh-key-1": "refresh-secret",
				"reset-key-1":   "reset-secret",
			},
			APIAccessKid:      "access-key-1",
			APIAccessDuration: 15 * time.Minute,
			RefreshKid:        "refresh-key-1",
			RefreshDuration:   720 * time.Hour,
			ResetKid:          "reset-key-1",
			ResetDuration:     time.Hour,
			TokenIssuer:       "jwt-keychain",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost:5432/auth"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestValidate_Success(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_EmptyIssuer(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenIssuer = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestValidate_MissingSignerForPurpose(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
	}{
		{"api-access kid not configured", func(c *StructuredConfig) { c.Auth.APIAccessKid = "" }},
		{"api-access kid absent from key set", func(c *StructuredConfig) { c.Auth.APIAccessKid = "unknown" }},
		{"reset kid not configured", func(c *StructuredConfig) { c.Auth.ResetKid = "" }},
		{"reset kid absent from key set", func(c *StructuredConfig) { c.Auth.ResetKid = "unknown" }},
		{"refresh kid absent from key set", func(c *StructuredConfig) { c.Auth.RefreshKid = "unknown" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), ErrMissingSigner)
		})
	}
}

// TestValidate_RefreshOptional verifies that leaving the refresh kid empty is
// a valid configuration: refresh is a capability, not a requirement.
func TestValidate_RefreshOptional(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.RefreshKid = ""
	cfg.Auth.RefreshDuration = 0

	require.NoError(t, cfg.validate())
	assert.False(t, cfg.Auth.RefreshEnabled())
}

func TestValidate_ZeroTokenDurations(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.APIAccessDuration = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg = validConfig()
	cfg.Auth.ResetDuration = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg = validConfig()
	cfg.Auth.RefreshDuration = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestValidate_NegativeBcryptCost(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.BCryptCost = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}
