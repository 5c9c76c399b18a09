package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories. All of them share one
// SQLite file.
type ClientStorages struct {
	SessionRepository LocalSessionRepository
	DraftRepository   LocalDraftRepository
	ResultsRepository LocalResultsRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, applies the
// client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	local := newLocalStorage(db, logger)

	return &ClientStorages{
		SessionRepository: local,
		DraftRepository:   local,
		ResultsRepository: local,
		db:                db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
