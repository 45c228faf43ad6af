// Package config loads and validates the jwt-keychain service configuration.
//
// Configuration is assembled by a builder that merges three sources in order
// (environment variables, command-line flags, optional JSON file) using
// dario.cat/mergo, then validates the result. The signing key set (kid →
// secret) together with the per-purpose key ids forms the token-signer
// configuration; validation guarantees every required purpose resolves to
// exactly one signer before the service starts.
package config
