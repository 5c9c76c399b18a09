package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
)

// accessRepository keeps the allow-list of users a form is shared with in
// the "form_allowed_users" table.
type accessRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccessRepository(db *DB, logger *logger.Logger) AccessRepository {
	return &accessRepository{
		DB:     db,
		logger: logger,
	}
}

// GrantAccess adds userIDs to the allow-list. Users that already have access
// are skipped.
func (a *accessRepository) GrantAccess(ctx context.Context, formID int64, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildGrantAccessQuery(formID, userIDs)
	if err != nil {
		log.Err(err).Str("func", "*accessRepository.GrantAccess").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accessRepository.GrantAccess").
			Int64("form_id", formID).
			Int("users", len(userIDs)).
			Msg("error granting access")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrReferenceNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RevokeAccess removes userID from the allow-list. Revoking a user that has
// no access is not an error.
func (a *accessRepository) RevokeAccess(ctx context.Context, formID, userID int64) error {
	if _, err := a.ExecContext(ctx, revokeAccess, formID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRepository.RevokeAccess").
			Int64("form_id", formID).
			Int64("user_id", userID).
			Msg("error revoking access")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (a *accessRepository) ListAllowedUsers(ctx context.Context, formID int64) ([]int64, error) {
	var userIDs []int64
	err := a.withRetry(ctx, func() error {
		rows, err := a.QueryContext(ctx, listAllowedUsers, formID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		userIDs = make([]int64, 0, 8)
		for rows.Next() {
			var id int64
			if err = rows.Scan(&id); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			userIDs = append(userIDs, id)
		}

		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRepository.ListAllowedUsers").Int64("form_id", formID).Msg("error listing allowed users")
		return nil, err
	}

	return userIDs, nil
}

func (a *accessRepository) HasAccess(ctx context.Context, formID, userID int64) (bool, error) {
	var allowed bool
	err := a.withRetry(ctx, func() error {
		return a.QueryRowContext(ctx, hasAccess, formID, userID).Scan(&allowed)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessRepository.HasAccess").
			Int64("form_id", formID).
			Int64("user_id", userID).
			Msg("error checking access")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return allowed, nil
}
