package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAuthConfigs indicates invalid token or hashing settings
	// (for example, a missing issuer or a zero token lifetime).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrMissingSigner indicates that a token purpose references a key id
	// that is absent from the configured signing key set. This is always a
	// startup-time error; the service refuses to run without a signer for
	// every required purpose.
	ErrMissingSigner = errors.New("missing signer for configured key id")
)
