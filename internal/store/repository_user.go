package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
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

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt). The
// returned record keeps the input hash; the RETURNING clause does not
// read it back.
//
// Error handling:
//   - unique-constraint violation on username/email → [ErrUsernameAlreadyExists]
//     / [ErrEmailAlreadyExists] (or [ErrUserAlreadyExists] when the column
//     cannot be attributed).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db and scan the canonical record back
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, r.mapUniqueViolation(err)
	}

	return user, nil
}

// FindUserByID retrieves an account by identifier using the
// current-user projection, which excludes the password hash.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.findUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByCredential retrieves the full account record (including the
// password hash) whose username OR email equals credential. This is the
// login-only projection; the hash is consumed solely by the auth
// service's verification step.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByCredential(ctx context.Context, credential string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.findUserByCredentialQuery(credential)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByCredential").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByCredential").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// mapUniqueViolation translates driver-specific unique-constraint
// failures into the repository's sentinel errors; anything else is
// wrapped as an unexpected DB error.
func (r *userRepository) mapUniqueViolation(err error) error {
	column, ok := postgresUniqueViolation(err)
	if !ok {
		column, ok = sqliteUniqueViolation(err)
	}
	if !ok {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch column {
	case "username":
		return ErrUsernameAlreadyExists
	case "email":
		return ErrEmailAlreadyExists
	default:
		return ErrUserAlreadyExists
	}
}
