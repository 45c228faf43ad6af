package models

// UserUpdate describes a partial mutation of a user record. Nil pointer
// fields are left untouched by the persistence layer, which lets a single
// UPDATE serve profile edits of any shape (name only, email only, password
// change, or any combination).
type UserUpdate struct {
	// UserID identifies the record being mutated.
	UserID int64

	Email          *string
	Name           *string
	HashedPassword *string

	// BumpPasswordVersion increments the password version counter together
	// with the hash change. Must be set whenever HashedPassword is set; the
	// counter is what implicitly invalidates outstanding reset tokens.
	BumpPasswordVersion bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.Name == nil && u.HashedPassword == nil
}
