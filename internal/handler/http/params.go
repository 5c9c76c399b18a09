package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// Request parsing failures, all answered with 400.
var (
	ErrInvalidFormID     = errors.New("invalid form id")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
)

func formIDParam(r *http.Request) (int64, error) {
	formID, err := strconv.ParseInt(chi.URLParam(r, "formID"), 10, 64)
	if err != nil || formID <= 0 {
		return 0, ErrInvalidFormID
	}
	return formID, nil
}

// userID returns the id stored by the auth middleware. Handlers behind auth
// always have it.
func userID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return v, nil
}

func boolQueryParam(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return &v, nil
}
