package service

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/models"
)

type clientFormService struct {
	adapter adapter.ServerAdapter
}

func NewClientFormService(serverAdapter adapter.ServerAdapter) ClientFormService {
	return &clientFormService{adapter: serverAdapter}
}

func (s *clientFormService) List(ctx context.Context, scope adapter.FormScope) ([]models.Form, error) {
	forms, err := s.adapter.ListForms(ctx, scope)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return forms, nil
}

func (s *clientFormService) Get(ctx context.Context, formID int64) (models.Form, error) {
	form, err := s.adapter.GetForm(ctx, formID)
	if err != nil {
		return models.Form{}, mapAdapterError(err)
	}

	return formshape.DisplayOrder(form), nil
}

func (s *clientFormService) Submit(ctx context.Context, formID int64, answers models.Answers) error {
	return mapAdapterError(s.adapter.SubmitAnswers(ctx, formID, answers))
}

func (s *clientFormService) Share(ctx context.Context, formID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return ErrInvalidDataProvided
	}

	return mapAdapterError(s.adapter.ShareForm(ctx, formID, userIDs))
}

func (s *clientFormService) Users(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return users, nil
}
