package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type formService struct {
	formRepository store.FormRepository
	guard          formGuard
	publisher      events.Publisher

	// now is the clock used to stamp questions without created_at.
	now func() time.Time

	logger *logger.Logger
}

func NewFormService(formRepository store.FormRepository, accessRepository store.AccessRepository, publisher events.Publisher, logger *logger.Logger) FormService {
	return &formService{
		formRepository: formRepository,
		guard:          formGuard{forms: formRepository, access: accessRepository},
		publisher:      publisher,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *formService) CreateForm(ctx context.Context, userID int64, payload models.ServerFormPayload) (models.Form, error) {
	log := logger.FromContext(ctx)

	form := s.stamp(payload.Form(userID))

	created, err := s.formRepository.CreateForm(ctx, form)
	if err != nil {
		log.Err(err).Int64("owner", userID).Str("title", form.Title).Msg("form creation failed")
		return models.Form{}, fmt.Errorf("form creation failed: %w", err)
	}

	return formshape.DisplayOrder(created), nil
}

func (s *formService) UpdateForm(ctx context.Context, userID, formID int64, payload models.ServerFormPayload) (models.Form, error) {
	log := logger.FromContext(ctx)

	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return models.Form{}, err
	}

	form := s.stamp(payload.Form(userID))
	form.ID = formID

	updated, err := s.formRepository.UpdateForm(ctx, form)
	if err != nil {
		log.Err(err).Int64("form_id", formID).Msg("form update failed")
		return models.Form{}, fmt.Errorf("form update failed: %w", err)
	}

	if err = s.publisher.Publish(ctx, events.TopicFormUpdated, events.FormEvent{FormID: formID, UserID: userID}); err != nil {
		log.Err(err).Int64("form_id", formID).Msg("form.updated event was not published")
	}

	return formshape.DisplayOrder(updated), nil
}

func (s *formService) GetForm(ctx context.Context, userID, formID int64) (models.Form, error) {
	form, err := s.guard.accessible(ctx, userID, formID)
	if err != nil {
		return models.Form{}, err
	}

	return formshape.DisplayOrder(form), nil
}

func (s *formService) ListForms(ctx context.Context, filter models.FormFilter) ([]models.Form, error) {
	forms, err := s.formRepository.ListForms(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("form listing failed")
		return nil, fmt.Errorf("form listing failed: %w", err)
	}

	return forms, nil
}

func (s *formService) ToggleTemplate(ctx context.Context, userID, formID int64) (bool, error) {
	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return false, err
	}

	isTemplate, err := s.formRepository.ToggleTemplate(ctx, formID)
	if err != nil {
		return false, fmt.Errorf("template toggle failed: %w", err)
	}

	return isTemplate, nil
}

func (s *formService) SetStatus(ctx context.Context, userID, formID int64, status models.FormStatus) (models.Form, error) {
	if status.IsActive == nil && status.IsExpired == nil {
		return models.Form{}, ErrInvalidDataProvided
	}

	if _, err := s.guard.owned(ctx, userID, formID); err != nil {
		return models.Form{}, err
	}

	form, err := s.formRepository.SetStatus(ctx, formID, status)
	if err != nil {
		return models.Form{}, fmt.Errorf("status update failed: %w", err)
	}

	return form, nil
}

// Fields lists the questions of the form as report columns in display
// order.
func (s *formService) Fields(ctx context.Context, userID, formID int64) ([]models.Field, error) {
	form, err := s.guard.accessible(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	return fieldsOf(form), nil
}

// stamp gives questions without a created_at key increasing keys, so that
// their display order equals their array order.
func (s *formService) stamp(form models.Form) models.Form {
	seq := s.now().UnixMilli()
	pages := make([]models.Page, len(form.Pages))
	for i, page := range form.Pages {
		questions := make([]models.Question, len(page.Questions))
		for j, question := range page.Questions {
			if question.CreatedAt == 0 {
				question.CreatedAt = seq
				seq++
			}
			questions[j] = question
		}
		page.Questions = questions
		pages[i] = page
	}
	form.Pages = pages

	return form
}

func fieldsOf(form models.Form) []models.Field {
	display := formshape.DisplayOrder(form)
	fields := make([]models.Field, 0, len(display.Questions()))
	for _, question := range display.Questions() {
		fields = append(fields, models.Field{
			ID:       question.ID,
			Name:     models.QuestionColumn(question.ID),
			Text:     question.Text,
			Type:     question.Type,
			DataType: question.DataType,
		})
	}

	return fields
}
