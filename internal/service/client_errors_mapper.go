// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgUnknownQuestion:
			return ErrUnknownQuestion
		case app.MsgMissingAnswer:
			return ErrMissingAnswer
		case app.MsgNonNumericTarget:
			return ErrNonNumericTarget
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgFormNotFound:
			return store.ErrFormNotFound
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameAlreadyExists:
			return store.ErrUsernameAlreadyExists
		case app.MsgFormExpired:
			return ErrFormExpired
		}

	case errors.Is(err, adapter.ErrNotImplemented):
		if msg == app.MsgAIDisabled {
			return adapter.ErrAIDisabled
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgAIFailed:
			return adapter.ErrInvalidAIResponse
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// isServerUnavailable reports whether err means the server could not answer
// at all, as opposed to rejecting the request.
func isServerUnavailable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return false
	}

	return true
}
