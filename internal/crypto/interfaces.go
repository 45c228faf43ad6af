package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the credential-hashing contract used by the auth service.
// Implementations must use a slow, salted one-way function; the output of
// Hash is the only credential representation that may ever be persisted.
//
// Hashing and verification are CPU-bound and side-effect-free; they are safe
// to call from any goroutine.
type PasswordHasher interface {
	// Hash derives a storable digest from a plaintext password. It fails
	// only on an internal cryptographic error.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest. A mismatch
	// is a false return, not an error; an error is returned only when the
	// stored digest is malformed.
	Verify(password, hashed string) (bool, error)
}
