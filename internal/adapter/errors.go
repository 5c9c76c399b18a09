package adapter

import "errors"

// HTTP status errors returned by the server adapter.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrNotImplemented      = errors.New("not implemented")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrAIDisabled is returned by the generator when no API key is set.
	ErrAIDisabled = errors.New("ai form generation is not configured")
	// ErrInvalidAIResponse is returned when the model output holds no usable
	// form.
	ErrInvalidAIResponse = errors.New("invalid ai response")

	// ErrOAuthDisabled is returned by the verifier when no client id is set.
	ErrOAuthDisabled = errors.New("google sign-in is not configured")
	// ErrInvalidIdentity is returned for a code that cannot be exchanged or
	// an id token without a verified e-mail.
	ErrInvalidIdentity = errors.New("invalid external identity")
)
