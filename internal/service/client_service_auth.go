package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Session, error) {
	token, err := a.adapter.SignUp(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, req.Username, token)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, req.Username, token)
}

func (a *clientAuthService) persist(ctx context.Context, username string, token models.Token) (models.Session, error) {
	session := models.Session{UserID: token.UserID, Username: username, Token: token.SignedString}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.persist").Msg("session was not saved locally")
		return models.Session{}, fmt.Errorf("saving session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("loading session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	return nil
}
