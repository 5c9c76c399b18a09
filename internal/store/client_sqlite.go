package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// localStorage implements the client repositories on top of the SQLite file
// opened by [NewConnectSQLite]. Timestamps are stored as unix milliseconds.
type localStorage struct {
	*DB
	logger *logger.Logger
}

func newLocalStorage(db *DB, logger *logger.Logger) *localStorage {
	return &localStorage{DB: db, logger: logger}
}

func (s *localStorage) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := sqlite.Insert("session").
		Columns("id", "user_id", "username", "token", "updated_at").
		Values(1, session.UserID, session.Username, session.Token, time.Now().UnixMilli()).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, username = excluded.username, token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := sqlite.Select("user_id", "username", "token").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.Username, &session.Token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrLocalSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (s *localStorage) ClearSession(ctx context.Context) error {
	query, args, err := sqlite.Delete("session").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) SaveDraft(ctx context.Context, draft models.Draft) error {
	data, err := json.Marshal(draft.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	updatedAt := draft.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args, err := sqlite.Insert("drafts").
		Columns("draft_key", "form_id", "title", "description", "data", "updated_at").
		Values(draft.Key, draft.FormID, draft.Title, draft.Description, string(data), updatedAt.UnixMilli()).
		Suffix("ON CONFLICT(draft_key) DO UPDATE SET form_id = excluded.form_id, title = excluded.title, description = excluded.description, data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.SaveDraft").Str("draft_key", draft.Key).Msg("error saving draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

var draftColumns = []string{"draft_key", "form_id", "title", "description", "data", "updated_at"}

func (s *localStorage) GetDraft(ctx context.Context, key string) (models.Draft, error) {
	query, args, err := sqlite.Select(draftColumns...).
		From("drafts").
		Where(sq.Eq{"draft_key": key}).
		ToSql()
	if err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	draft, err := scanDraft(s.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Draft{}, ErrDraftNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.GetDraft").Str("draft_key", key).Msg("error reading draft")
		return models.Draft{}, err
	}

	return draft, nil
}

func (s *localStorage) ListDrafts(ctx context.Context) ([]models.Draft, error) {
	query, args, err := sqlite.Select(draftColumns...).
		From("drafts").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.ListDrafts").Msg("error listing drafts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	drafts := make([]models.Draft, 0, 8)
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return drafts, nil
}

func (s *localStorage) DeleteDraft(ctx context.Context, key string) error {
	query, args, err := sqlite.Delete("drafts").Where(sq.Eq{"draft_key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) SaveResults(ctx context.Context, formID int64, rows []models.ResultRow) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := sqlite.Insert("cached_results").
		Columns("form_id", "rows", "fetched_at").
		Values(formID, string(payload), time.Now().UnixMilli()).
		Suffix("ON CONFLICT(form_id) DO UPDATE SET rows = excluded.rows, fetched_at = excluded.fetched_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStorage.SaveResults").Int64("form_id", formID).Msg("error caching results")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) GetResults(ctx context.Context, formID int64) ([]models.ResultRow, time.Time, error) {
	query, args, err := sqlite.Select("rows", "fetched_at").
		From("cached_results").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payload   string
		fetchedAt int64
	)
	err = s.QueryRowContext(ctx, query, args...).Scan(&payload, &fetchedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, time.Time{}, ErrCachedResultsNotFound
	case err != nil:
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var rows []models.ResultRow
	if err = json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return rows, time.UnixMilli(fetchedAt), nil
}

func scanDraft(row rowScanner) (models.Draft, error) {
	var (
		draft     models.Draft
		data      string
		updatedAt int64
	)
	if err := row.Scan(&draft.Key, &draft.FormID, &draft.Title, &draft.Description, &data, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Draft{}, err
		}
		return models.Draft{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(data), &draft.Data); err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}
	draft.UpdatedAt = time.UnixMilli(updatedAt)

	return draft, nil
}
