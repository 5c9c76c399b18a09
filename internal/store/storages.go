package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// Storages groups the server-side repositories and the report cache.
type Storages struct {
	UserRepository   UserRepository
	FormRepository   FormRepository
	AccessRepository AccessRepository
	AnswerRepository AnswerRepository
	ReportRepository ReportRepository
	ReportCache      ReportCache

	db *DB
}

// NewStorages connects to PostgreSQL, applies the migrations, connects the
// report cache and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, err := NewReportCache(ctx, cfg.Cache, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		FormRepository:   NewFormRepository(db, log),
		AccessRepository: NewAccessRepository(db, log),
		AnswerRepository: NewAnswerRepository(db, log),
		ReportRepository: NewReportRepository(db, log),
		ReportCache:      cache,
		db:               db,
	}, nil
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return errors.Join(s.ReportCache.Close(), s.db.Close())
}
