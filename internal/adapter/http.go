package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme, http is
// assumed then.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs to /api/auth/signup and keeps
// the bearer token from the Authorization response header.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/signup", req)
}

// Login implements [ServerAdapter]. It POSTs to /api/auth/login and keeps
// the bearer token from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := h.authedRequest(ctx).SetResult(&user).Post("/api/me")
	if err = h.check("me", resp, err); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	resp, err := h.authedRequest(ctx).SetResult(&users).Get("/api/getallusersid")
	if err = h.check("list users", resp, err); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version")
	if err = h.check("version", resp, err); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListForms(ctx context.Context, scope FormScope) ([]models.Form, error) {
	path := "/api/forms"
	if scope != ScopeOwned {
		path += "/" + string(scope)
	}

	var forms []models.Form
	resp, err := h.authedRequest(ctx).SetResult(&forms).Get(path)
	if err = h.check("list forms", resp, err); err != nil {
		return nil, err
	}

	return forms, nil
}

func (h *httpServerAdapter) GetForm(ctx context.Context, formID int64) (models.Form, error) {
	var form models.Form
	resp, err := h.authedRequest(ctx).SetResult(&form).Get(formPath(formID, ""))
	if err = h.check("get form", resp, err); err != nil {
		return models.Form{}, err
	}

	return form, nil
}

func (h *httpServerAdapter) CreateForm(ctx context.Context, payload models.ServerFormPayload) (models.Form, error) {
	var form models.Form
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&form).
		Post("/api/form")
	if err = h.check("create form", resp, err); err != nil {
		return models.Form{}, err
	}

	return form, nil
}

func (h *httpServerAdapter) UpdateForm(ctx context.Context, formID int64, payload models.ServerFormPayload) (models.Form, error) {
	var form models.Form
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&form).
		Put(formPath(formID, ""))
	if err = h.check("update form", resp, err); err != nil {
		return models.Form{}, err
	}

	return form, nil
}

func (h *httpServerAdapter) ShareForm(ctx context.Context, formID int64, userIDs []int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{UserIDs: userIDs}).
		Post(formPath(formID, "/addusers"))

	return h.check("share form", resp, err)
}

func (h *httpServerAdapter) SubmitAnswers(ctx context.Context, formID int64, answers models.Answers) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(answers).
		Post(formPath(formID, "/submit"))

	return h.check("submit answers", resp, err)
}

func (h *httpServerAdapter) GetFields(ctx context.Context, formID int64) ([]models.Field, error) {
	var fields []models.Field
	resp, err := h.authedRequest(ctx).SetResult(&fields).Get(formPath(formID, "/fields"))
	if err = h.check("get fields", resp, err); err != nil {
		return nil, err
	}

	return fields, nil
}

func (h *httpServerAdapter) GetResults(ctx context.Context, formID int64, query models.ResultsQuery) ([]models.ResultRow, error) {
	req := h.authedRequest(ctx)
	if query.Rows > 0 {
		req.SetQueryParam("rows", strconv.Itoa(query.Rows))
	}
	if query.Cols > 0 {
		req.SetQueryParam("cols", strconv.Itoa(query.Cols))
	}

	var rows []models.ResultRow
	resp, err := req.SetResult(&rows).Get(formPath(formID, "/results"))
	if err = h.check("get results", resp, err); err != nil {
		return nil, err
	}

	return rows, nil
}

func (h *httpServerAdapter) QueryReport(ctx context.Context, formID int64, reportReq models.ReportRequest) (models.ReportResult, error) {
	var result models.ReportResult
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reportReq).
		SetResult(&result).
		Post(formPath(formID, "/query"))
	if err = h.check("query report", resp, err); err != nil {
		return models.ReportResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) PreviewAIForm(ctx context.Context, aiReq models.AIFormRequest) (models.AIFormResponse, error) {
	var result models.AIFormResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(aiReq).
		SetResult(&result).
		Post("/api/ai/preview-form")
	if err = h.check("preview ai form", resp, err); err != nil {
		return models.AIFormResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// check wraps a transport failure with op and maps a non-2xx response.
func (h *httpServerAdapter) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter."+op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func formPath(formID int64, suffix string) string {
	return "/api/form/" + strconv.FormatInt(formID, 10) + suffix
}
