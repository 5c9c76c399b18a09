package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same username
	// is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrFormNotFound is returned when a form lookup or update matches no row.
	ErrFormNotFound = errors.New("form not found")

	// ErrReferenceNotFound is returned when a row references a user or form
	// that does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced row not found")

	// ErrInvalidReportColumn is returned when a report references a column
	// other than user_id or question_<id>.
	ErrInvalidReportColumn = errors.New("invalid report column")

	// ErrLocalSessionNotFound is returned by the client store when nobody is
	// logged in.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrDraftNotFound is returned by the client store for an unknown draft
	// key.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrCachedResultsNotFound is returned by the client store when no raw
	// results were downloaded for the form yet.
	ErrCachedResultsNotFound = errors.New("cached results not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingJSON         = errors.New("failed to encode json column")
	ErrDecodingJSON         = errors.New("failed to decode json column")
)
