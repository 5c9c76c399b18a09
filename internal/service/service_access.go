package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type accessService struct {
	accessRepository store.AccessRepository
	guard            formGuard

	logger *logger.Logger
}

func NewAccessService(formRepository store.FormRepository, accessRepository store.AccessRepository, logger *logger.Logger) AccessService {
	return &accessService{
		accessRepository: accessRepository,
		guard:            formGuard{forms: formRepository, access: accessRepository},
		logger:           logger,
	}
}

func (s *accessService) ListAllowedUsers(ctx context.Context, userID, formID int64) ([]int64, error) {
	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return nil, err
	}

	userIDs, err := s.accessRepository.ListAllowedUsers(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("error listing users of form %d: %w", formID, err)
	}

	return userIDs, nil
}

// Share grants access to userIDs. The owner and non-positive ids are
// skipped, duplicates are granted once.
func (s *accessService) Share(ctx context.Context, userID, formID int64, userIDs ...int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return err
	}

	targets := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if id <= 0 || id == userID || slices.Contains(targets, id) {
			continue
		}
		targets = append(targets, id)
	}
	if len(targets) == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.accessRepository.GrantAccess(ctx, formID, targets...); err != nil {
		log.Err(err).Int64("form_id", formID).Ints64("user_ids", targets).Msg("granting access failed")
		return fmt.Errorf("granting access failed: %w", err)
	}

	return nil
}

func (s *accessService) Revoke(ctx context.Context, userID, formID, targetUserID int64) error {
	if targetUserID <= 0 {
		return ErrInvalidDataProvided
	}

	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return err
	}

	if err := s.accessRepository.RevokeAccess(ctx, formID, targetUserID); err != nil {
		return fmt.Errorf("revoking access failed: %w", err)
	}

	return nil
}
