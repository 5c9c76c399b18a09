package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/tui"
	"github.com/MKhiriev/go-form-keeper/models"
)

// Client is what cmd/client runs until the user quits.
type Client interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

// UI is the part of the terminal UI the application drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}

type App struct {
	services     *service.ClientServices
	ui           UI
	syncInterval time.Duration
	logger       *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, syncInterval time.Duration, logger *logger.Logger) *App {
	return &App{
		services:     services,
		ui:           ui,
		syncInterval: syncInterval,
		logger:       logger,
	}
}

// Run restores the saved session or asks the user to log in, then runs the
// main loop with the background results refresh. Logging out starts over.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		a.services.ResultsSyncJob.Start(ctx, a.syncInterval)
		logout, err := a.ui.MainLoop(ctx, session)
		a.services.ResultsSyncJob.Stop()

		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
	}
}

func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if err == nil {
		a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, service.ErrNotLoggedIn) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}
