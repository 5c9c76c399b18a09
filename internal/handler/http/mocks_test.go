package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface through overridable function
// fields. A nil field panics, so tests only set what the route under test
// calls.

type mockAuthService struct {
	signUpFn          func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	loginFn           func(ctx context.Context, req models.LoginRequest) (models.User, error)
	loginWithGoogleFn func(ctx context.Context, req models.GoogleLoginRequest) (models.User, error)
	getUserFn         func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn       func(ctx context.Context) ([]models.UserSummary, error)
	createTokenFn     func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) LoginWithGoogle(ctx context.Context, req models.GoogleLoginRequest) (models.User, error) {
	return m.loginWithGoogleFn(ctx, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockFormService struct {
	createFormFn     func(ctx context.Context, userID int64, payload models.ServerFormPayload) (models.Form, error)
	updateFormFn     func(ctx context.Context, userID, formID int64, payload models.ServerFormPayload) (models.Form, error)
	getFormFn        func(ctx context.Context, userID, formID int64) (models.Form, error)
	listFormsFn      func(ctx context.Context, filter models.FormFilter) ([]models.Form, error)
	toggleTemplateFn func(ctx context.Context, userID, formID int64) (bool, error)
	setStatusFn      func(ctx context.Context, userID, formID int64, status models.FormStatus) (models.Form, error)
	fieldsFn         func(ctx context.Context, userID, formID int64) ([]models.Field, error)
}

func (m *mockFormService) CreateForm(ctx context.Context, userID int64, payload models.ServerFormPayload) (models.Form, error) {
	return m.createFormFn(ctx, userID, payload)
}

func (m *mockFormService) UpdateForm(ctx context.Context, userID, formID int64, payload models.ServerFormPayload) (models.Form, error) {
	return m.updateFormFn(ctx, userID, formID, payload)
}

func (m *mockFormService) GetForm(ctx context.Context, userID, formID int64) (models.Form, error) {
	return m.getFormFn(ctx, userID, formID)
}

func (m *mockFormService) ListForms(ctx context.Context, filter models.FormFilter) ([]models.Form, error) {
	return m.listFormsFn(ctx, filter)
}

func (m *mockFormService) ToggleTemplate(ctx context.Context, userID, formID int64) (bool, error) {
	return m.toggleTemplateFn(ctx, userID, formID)
}

func (m *mockFormService) SetStatus(ctx context.Context, userID, formID int64, status models.FormStatus) (models.Form, error) {
	return m.setStatusFn(ctx, userID, formID, status)
}

func (m *mockFormService) Fields(ctx context.Context, userID, formID int64) ([]models.Field, error) {
	return m.fieldsFn(ctx, userID, formID)
}

type mockAccessService struct {
	listAllowedUsersFn func(ctx context.Context, userID, formID int64) ([]int64, error)
	shareFn            func(ctx context.Context, userID, formID int64, userIDs ...int64) error
	revokeFn           func(ctx context.Context, userID, formID, targetUserID int64) error
}

func (m *mockAccessService) ListAllowedUsers(ctx context.Context, userID, formID int64) ([]int64, error) {
	return m.listAllowedUsersFn(ctx, userID, formID)
}

func (m *mockAccessService) Share(ctx context.Context, userID, formID int64, userIDs ...int64) error {
	return m.shareFn(ctx, userID, formID, userIDs...)
}

func (m *mockAccessService) Revoke(ctx context.Context, userID, formID, targetUserID int64) error {
	return m.revokeFn(ctx, userID, formID, targetUserID)
}

type mockAnswerService struct {
	submitFn        func(ctx context.Context, userID, formID int64, answers models.Answers) (models.Submission, error)
	resultsFn       func(ctx context.Context, userID, formID int64, query models.ResultsQuery) ([]models.ResultRow, error)
	exportResultsFn func(ctx context.Context, userID, formID int64, w io.Writer) error
}

func (m *mockAnswerService) Submit(ctx context.Context, userID, formID int64, answers models.Answers) (models.Submission, error) {
	return m.submitFn(ctx, userID, formID, answers)
}

func (m *mockAnswerService) Results(ctx context.Context, userID, formID int64, query models.ResultsQuery) ([]models.ResultRow, error) {
	return m.resultsFn(ctx, userID, formID, query)
}

func (m *mockAnswerService) ExportResults(ctx context.Context, userID, formID int64, w io.Writer) error {
	return m.exportResultsFn(ctx, userID, formID, w)
}

type mockReportService struct {
	queryFn func(ctx context.Context, userID, formID int64, req models.ReportRequest) (models.ReportResult, error)
}

func (m *mockReportService) Query(ctx context.Context, userID, formID int64, req models.ReportRequest) (models.ReportResult, error) {
	return m.queryFn(ctx, userID, formID, req)
}

type mockAIService struct {
	previewFormFn  func(ctx context.Context, req models.AIFormRequest) (models.Form, error)
	generateFormFn func(ctx context.Context, userID int64, req models.AIFormRequest) (models.Form, error)
}

func (m *mockAIService) PreviewForm(ctx context.Context, req models.AIFormRequest) (models.Form, error) {
	return m.previewFormFn(ctx, req)
}

func (m *mockAIService) GenerateForm(ctx context.Context, userID int64, req models.AIFormRequest) (models.Form, error) {
	return m.generateFormFn(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "good-token"
	testUserID = int64(7)
)

// acceptingAuth accepts testToken as user testUserID and rejects anything
// else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			if user.UserID == 0 {
				return models.Token{}, errors.New("no user id")
			}
			return models.Token{SignedString: "signed-for-" + user.Username, UserID: user.UserID}, nil
		},
	}
}

// newTestRouter fills unset services with mocks and returns the full router.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

// serve runs one request through router. A non-empty body is sent as JSON.
// authed adds the test bearer token.
func serve(router http.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func responseBody(rr *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rr.Body.String())
}
