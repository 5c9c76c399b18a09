package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidFormID, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidQueryParam, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrUnknownQuestion, errorResponse{http.StatusBadRequest, app.MsgUnknownQuestion}},
	{store.ErrInvalidReportColumn, errorResponse{http.StatusBadRequest, app.MsgUnknownQuestion}},
	{service.ErrMissingAnswer, errorResponse{http.StatusBadRequest, app.MsgMissingAnswer}},
	{service.ErrNonNumericTarget, errorResponse{http.StatusBadRequest, app.MsgNonNumericTarget}},
	{store.ErrReferenceNotFound, errorResponse{http.StatusBadRequest, app.MsgUserNotFound}},

	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{adapter.ErrInvalidIdentity, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},

	{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},

	{store.ErrFormNotFound, errorResponse{http.StatusNotFound, app.MsgFormNotFound}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},

	{store.ErrUsernameAlreadyExists, errorResponse{http.StatusConflict, app.MsgUsernameAlreadyExists}},
	{service.ErrFormExpired, errorResponse{http.StatusConflict, app.MsgFormExpired}},

	{adapter.ErrAIDisabled, errorResponse{http.StatusNotImplemented, app.MsgAIDisabled}},
	{adapter.ErrOAuthDisabled, errorResponse{http.StatusNotImplemented, app.MsgOAuthDisabled}},

	{adapter.ErrInvalidAIResponse, errorResponse{http.StatusBadGateway, app.MsgAIFailed}},
	{adapter.ErrBadGateway, errorResponse{http.StatusBadGateway, app.MsgAIFailed}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with the status and message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg(resp.message)

	http.Error(w, resp.message, resp.status)
}
