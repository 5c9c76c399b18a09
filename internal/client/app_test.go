package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/tui"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	service.ClientAuthService

	restored   []models.Session
	restoreErr error
	logouts    int
}

func (s *stubAuth) Restore(context.Context) (models.Session, error) {
	if len(s.restored) == 0 {
		return models.Session{}, s.restoreErr
	}
	session := s.restored[0]
	s.restored = s.restored[1:]
	return session, nil
}

func (s *stubAuth) Logout(context.Context) error {
	s.logouts++
	return nil
}

type stubSyncJob struct {
	starts   int
	stops    int
	interval time.Duration
}

func (s *stubSyncJob) Start(_ context.Context, interval time.Duration) {
	s.starts++
	s.interval = interval
}

func (s *stubSyncJob) Stop() { s.stops++ }

type stubUI struct {
	logins    []models.Session
	loginErr  error
	logouts   []bool
	mainErr   error
	mainCalls []models.Session
}

func (u *stubUI) LoginFlow(context.Context) (models.Session, error) {
	if len(u.logins) == 0 {
		return models.Session{}, u.loginErr
	}
	session := u.logins[0]
	u.logins = u.logins[1:]
	return session, nil
}

func (u *stubUI) MainLoop(_ context.Context, session models.Session) (bool, error) {
	u.mainCalls = append(u.mainCalls, session)
	if u.mainErr != nil {
		return false, u.mainErr
	}
	logout := u.logouts[0]
	u.logouts = u.logouts[1:]
	return logout, nil
}

func newTestApp(auth *stubAuth, job *stubSyncJob, ui *stubUI) *App {
	services := &service.ClientServices{AuthService: auth, ResultsSyncJob: job}
	return NewApp(services, ui, time.Minute, logger.Nop())
}

func TestApp_RestoredSession(t *testing.T) {
	ann := models.Session{UserID: 1, Username: "ann", Token: "t1"}
	auth := &stubAuth{restored: []models.Session{ann}}
	job := &stubSyncJob{}
	ui := &stubUI{logouts: []bool{false}}

	require.NoError(t, newTestApp(auth, job, ui).Run(context.Background()))

	assert.Equal(t, []models.Session{ann}, ui.mainCalls)
	assert.Equal(t, 1, job.starts)
	assert.Equal(t, 1, job.stops)
	assert.Equal(t, time.Minute, job.interval)
	assert.Zero(t, auth.logouts)
}

func TestApp_LoginThenLogoutStartsOver(t *testing.T) {
	ann := models.Session{UserID: 1, Username: "ann", Token: "t1"}
	bob := models.Session{UserID: 2, Username: "bob", Token: "t2"}
	auth := &stubAuth{restoreErr: service.ErrNotLoggedIn}
	job := &stubSyncJob{}
	ui := &stubUI{logins: []models.Session{ann, bob}, logouts: []bool{true, false}}

	require.NoError(t, newTestApp(auth, job, ui).Run(context.Background()))

	assert.Equal(t, []models.Session{ann, bob}, ui.mainCalls)
	assert.Equal(t, 1, auth.logouts)
	assert.Equal(t, 2, job.starts)
	assert.Equal(t, 2, job.stops)
}

func TestApp_UserQuitIsNotAnError(t *testing.T) {
	auth := &stubAuth{restoreErr: service.ErrNotLoggedIn}
	ui := &stubUI{loginErr: tui.ErrUserQuit}

	require.NoError(t, newTestApp(auth, &stubSyncJob{}, ui).Run(context.Background()))
	assert.Empty(t, ui.mainCalls)

	ann := models.Session{UserID: 1, Token: "t1"}
	job := &stubSyncJob{}
	ui = &stubUI{mainErr: tui.ErrUserQuit}
	require.NoError(t, newTestApp(&stubAuth{restored: []models.Session{ann}}, job, ui).Run(context.Background()))
	assert.Equal(t, 1, job.stops)
}

func TestApp_RestoreFailure(t *testing.T) {
	storageErr := errors.New("disk is gone")
	auth := &stubAuth{restoreErr: storageErr}
	ui := &stubUI{}

	err := newTestApp(auth, &stubSyncJob{}, ui).Run(context.Background())
	require.ErrorIs(t, err, storageErr)
	assert.Empty(t, ui.mainCalls)
}
