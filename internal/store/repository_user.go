package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
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

// CreateUser persists a new local account and returns it with the
// server-assigned id and creation time.
//
// A unique_violation on username is reported as [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Name, user.PasswordHash, user.Role, user.Provider)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, err
	}

	return created, nil
}

// UpsertExternalUser returns the account registered under user.Username,
// creating it first when it does not exist. An empty display name of an
// existing account is filled in from user.
func (r *userRepository) UpsertExternalUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertExternalUser, user.Username, user.Name, user.Role, user.Provider)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertExternalUser").Str("username", user.Username).Msg("error upserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertExternalUser").Msg("error scanning upserted user")
		return models.User{}, err
	}

	return saved, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// ListUsers returns every account ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, listUsers)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0, 16)
		for rows.Next() {
			user, scanErr := scanUser(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			users = append(users, user)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return scanErr
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		log.Debug().Str("func", funcName).Any("key", arg).Msg("user not found")
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.Provider,
		&user.CreatedAt,
	)

	return user, err
}
