package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsTransientPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, true},
		{"serialization failure wrapped", fmt.Errorf("list forms: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), true},
		{"server starting", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, true},
		{"bad conn", driver.ErrBadConn, true},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false},
		{"undefined column", &pgconn.PgError{Code: pgerrcode.UndefinedColumn}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransientPgError(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	transient := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	permanent := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	tests := []struct {
		name      string
		retryable func(error) bool
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{name: "first try succeeds", retryable: isTransientPgError, wantCalls: 1},
		{name: "transient then success", retryable: isTransientPgError, failures: []error{transient}, wantCalls: 2},
		{name: "gives up after all attempts", retryable: isTransientPgError, failures: []error{transient, transient, transient, transient}, wantCalls: retryAttempts, wantErr: transient},
		{name: "permanent error is not repeated", retryable: isTransientPgError, failures: []error{permanent}, wantCalls: 1, wantErr: permanent},
		{name: "retries disabled", retryable: nil, failures: []error{transient}, wantCalls: 1, wantErr: transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{logger: logger.Nop(), retryable: tt.retryable}
			calls := 0

			err := db.withRetry(context.Background(), func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	db := &DB{logger: logger.Nop(), retryable: isTransientPgError}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return driver.ErrBadConn
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, driver.ErrBadConn)
}
