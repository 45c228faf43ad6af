package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and mutation against the "users"
// table. Soft-deleted rows (deleted_at set) are invisible to every method.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, PasswordVersion,
// CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.HashedPassword)

	// create user in db
	if err := row.Err(); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.db.Retryable(err)).Msg("error: row is nil")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the non-deleted user record owning the given
// email address.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Bool("retryable", r.db.Retryable(err)).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return found, nil
}

// FindUserByID retrieves the non-deleted user record with the given id.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Bool("retryable", r.db.Retryable(err)).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateUser applies a partial mutation built by [buildUpdateUserQuery] and
// returns the updated record from the RETURNING clause.
//
// Error handling:
//   - Empty update → [ErrBuildingSQLQuery].
//   - PostgreSQL unique_violation (23505) on an email change → [ErrEmailAlreadyExists].
//   - No matching row (missing or soft-deleted user) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.UpdateUser").Bool("retryable", r.db.Retryable(err)).Msg("error: row is nil")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return updated, nil
}

// EmailInUseByAnother reports whether a non-deleted user other than
// excludeUserID already owns the given email address.
func (r *userRepository) EmailInUseByAnother(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var inUse bool
	row := r.db.QueryRowContext(ctx, emailInUseByAnother, email, excludeUserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.EmailInUseByAnother").Bool("retryable", r.db.Retryable(err)).Msg("error: row is nil")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&inUse); err != nil {
		log.Err(err).Str("func", "*userRepository.EmailInUseByAnother").Msg("error: scanning error")
		return false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return inUse, nil
}

// scanUser reads the canonical user column set out of a single-row result.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.HashedPassword,
		&user.PasswordVersion,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
