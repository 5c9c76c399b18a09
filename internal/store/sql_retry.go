package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const retryAttempts = 3

var retryDelays = [retryAttempts - 1]time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// transientPgCodes are worth another attempt: lost connections, rolled back
// transactions and a server that is still starting.
var transientPgCodes = map[string]bool{
	pgerrcode.ConnectionException:    true,
	pgerrcode.ConnectionDoesNotExist: true,
	pgerrcode.ConnectionFailure:      true,
	pgerrcode.TransactionRollback:    true,
	pgerrcode.SerializationFailure:   true,
	pgerrcode.DeadlockDetected:       true,
	pgerrcode.CannotConnectNow:       true,
}

// isTransientPgError reports whether a failed PostgreSQL call may succeed
// when repeated. Constraint violations and syntax errors never do.
func isTransientPgError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return transientPgCodes[pgErr.Code]
	}
	return errors.Is(err, driver.ErrBadConn)
}

// withRetry runs fn again while db.retryable accepts its error. Only
// idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		err = fn()
		if err == nil || db.retryable == nil || !db.retryable(err) {
			return err
		}
		if attempt == retryAttempts-1 {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("retrying transient database error")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryDelays[attempt]):
		}
	}

	return err
}
