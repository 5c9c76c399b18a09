package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single logged-in session of the client.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrLocalSessionNotFound] when nobody is logged in.
	GetSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// LocalDraftRepository keeps UI-shape drafts under a client-chosen key.
type LocalDraftRepository interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	GetDraft(ctx context.Context, key string) (models.Draft, error)
	// ListDrafts returns drafts most recently updated first.
	ListDrafts(ctx context.Context) ([]models.Draft, error)
	DeleteDraft(ctx context.Context, key string) error
}

// LocalResultsRepository keeps the last downloaded raw results per form.
type LocalResultsRepository interface {
	SaveResults(ctx context.Context, formID int64, rows []models.ResultRow) error
	// GetResults returns the rows and the time they were fetched.
	GetResults(ctx context.Context, formID int64) ([]models.ResultRow, time.Time, error)
}
