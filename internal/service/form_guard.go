package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

// formGuard loads forms on behalf of a user and enforces ownership and
// sharing rules.
type formGuard struct {
	forms  store.FormRepository
	access store.AccessRepository
}

// owned returns the form when userID owns it.
func (g formGuard) owned(ctx context.Context, userID, formID int64) (models.Form, error) {
	form, err := g.forms.GetForm(ctx, formID)
	if err != nil {
		return models.Form{}, fmt.Errorf("error loading form %d: %w", formID, err)
	}

	if form.OwnerID != userID {
		logger.FromContext(ctx).Warn().
			Int64("form_id", formID).
			Int64("user_id", userID).
			Msg("owner-only operation attempted by another user")
		return models.Form{}, ErrAccessDenied
	}

	return form, nil
}

// accessible returns the form when userID owns it or it is shared with
// userID.
func (g formGuard) accessible(ctx context.Context, userID, formID int64) (models.Form, error) {
	form, err := g.forms.GetForm(ctx, formID)
	if err != nil {
		return models.Form{}, fmt.Errorf("error loading form %d: %w", formID, err)
	}

	if form.OwnerID == userID {
		return form, nil
	}

	allowed, err := g.access.HasAccess(ctx, formID, userID)
	if err != nil {
		return models.Form{}, fmt.Errorf("error checking access to form %d: %w", formID, err)
	}
	if !allowed {
		return models.Form{}, ErrAccessDenied
	}

	return form, nil
}
