package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/models"
)

// ClientAuthService defines the client-side contract for sign-up, login and
// the persisted session.
type ClientAuthService interface {
	// SignUp registers on the server and persists the returned session.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Session, error)

	// Login authenticates on the server and persists the returned session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Restore loads the persisted session and attaches its token to the
	// server adapter. Returns ErrNotLoggedIn when no session is stored.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the persisted session and the adapter token.
	Logout(ctx context.Context) error
}

// ClientFormService covers browsing, filling and sharing forms that live on
// the server.
type ClientFormService interface {
	List(ctx context.Context, scope adapter.FormScope) ([]models.Form, error)

	// Get returns the form with every page's questions in created_at order.
	Get(ctx context.Context, formID int64) (models.Form, error)

	Submit(ctx context.Context, formID int64, answers models.Answers) error
	Share(ctx context.Context, formID int64, userIDs []int64) error
	Users(ctx context.Context) ([]models.UserSummary, error)
}

// ClientDraftService edits forms locally in UI shape and publishes them.
type ClientDraftService interface {
	// NewDraft creates an empty single-page draft.
	NewDraft(ctx context.Context, title, description string) (models.Draft, error)

	// Edit downloads a server form, converts it to UI shape and stores it as
	// a draft. Question ids of the draft are position-derived.
	Edit(ctx context.Context, formID int64) (models.Draft, error)

	// FromAI generates a form preview on the server and stores it as a
	// draft.
	FromAI(ctx context.Context, req models.AIFormRequest) (models.Draft, error)

	Save(ctx context.Context, draft models.Draft) error
	Get(ctx context.Context, key string) (models.Draft, error)
	List(ctx context.Context) ([]models.Draft, error)
	Delete(ctx context.Context, key string) error

	// Publish converts the draft to server shape and creates the form, or
	// updates it when the draft already has a form id. The draft is
	// refreshed from the server answer.
	Publish(ctx context.Context, key string) (models.Form, error)
}

// ClientReport is a report result together with where it was computed.
type ClientReport struct {
	models.ReportResult

	// Local is true when the server query failed and the rows were
	// aggregated on the client from raw results fetched at FetchedAt.
	Local     bool
	FetchedAt time.Time
}

// ClientReportService runs reports with a local fallback.
type ClientReportService interface {
	Fields(ctx context.Context, formID int64) ([]models.Field, error)

	// Query asks the server for the report. When the server cannot answer,
	// raw results are downloaded (or taken from the local copy) and
	// aggregated locally.
	Query(ctx context.Context, formID int64, req models.ReportRequest) (ClientReport, error)

	// RefreshResults downloads raw results and keeps them locally.
	RefreshResults(ctx context.Context, formID int64) error
}

// ClientResultsSyncJob defines the contract for a background worker that
// periodically refreshes the local raw results of the user's forms, so the
// report fallback has recent data.
type ClientResultsSyncJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
