package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAccessDenied is returned when the caller is neither the owner of the
	// form nor a user it is shared with, or when an owner-only operation is
	// attempted by someone else.
	ErrAccessDenied = errors.New("access denied")

	ErrFormExpired     = errors.New("form is expired")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrMissingAnswer   = errors.New("required question is not answered")

	ErrNonNumericTarget = errors.New("aggregate target must be numeric")
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrRegisterOnServer = errors.New("error registering on server")
	ErrLoginOnServer    = errors.New("error logging in on server")

	// ErrReportUnavailable is returned when the server query failed and no
	// raw results could be obtained for the local fallback.
	ErrReportUnavailable = errors.New("report is unavailable")
)
