package store

import (
	"fmt"

	"github.com/MKhiriev/jwt-keychain/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, name, hashed_password)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, hashed_password, password_version, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, hashed_password, password_version, created_at, updated_at
    FROM users
    WHERE email = $1 AND deleted_at IS NULL;`

	findUserByID = `SELECT user_id, email, name, hashed_password, password_version, created_at, updated_at
    FROM users
    WHERE user_id = $1 AND deleted_at IS NULL;`

	emailInUseByAnother = `SELECT EXISTS (
        SELECT 1 FROM users
        WHERE email = $1 AND user_id <> $2 AND deleted_at IS NULL
    );`
)

// buildUpdateUserQuery dynamically builds the UPDATE statement for a partial
// user mutation. Only the non-nil fields of the update produce SET clauses,
// and the password version counter is incremented in the same statement as
// the hash change so the two can never drift apart.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := squirrel.Update("users").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": update.UserID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING user_id, email, name, hashed_password, password_version, created_at, updated_at")

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.HashedPassword != nil {
		builder = builder.Set("hashed_password", *update.HashedPassword)
	}
	if update.BumpPasswordVersion {
		builder = builder.Set("password_version", squirrel.Expr("password_version + 1"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
