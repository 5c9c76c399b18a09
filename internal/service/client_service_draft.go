package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

type clientDraftService struct {
	drafts  store.LocalDraftRepository
	adapter adapter.ServerAdapter
	keys    *utils.UUIDGenerator
	now     func() time.Time
}

func NewClientDraftService(drafts store.LocalDraftRepository, serverAdapter adapter.ServerAdapter) ClientDraftService {
	return &clientDraftService{
		drafts:  drafts,
		adapter: serverAdapter,
		keys:    utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

// formDraftKey is the draft key of a server form opened for editing, so
// that editing the same form twice resumes one draft.
func formDraftKey(formID int64) string {
	return fmt.Sprintf("form-%d", formID)
}

func (s *clientDraftService) NewDraft(ctx context.Context, title, description string) (models.Draft, error) {
	if strings.TrimSpace(title) == "" {
		return models.Draft{}, ErrInvalidDataProvided
	}

	draft := models.Draft{
		Key:         s.keys.Generate(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Data:        models.UIFormData{Pages: []models.PageData{{Data: []models.FormObject{}}}},
	}

	return draft, s.Save(ctx, draft)
}

func (s *clientDraftService) Edit(ctx context.Context, formID int64) (models.Draft, error) {
	form, err := s.adapter.GetForm(ctx, formID)
	if err != nil {
		return models.Draft{}, mapAdapterError(err)
	}

	draft := draftOf(formDraftKey(formID), form)
	return draft, s.Save(ctx, draft)
}

func (s *clientDraftService) FromAI(ctx context.Context, req models.AIFormRequest) (models.Draft, error) {
	resp, err := s.adapter.PreviewAIForm(ctx, req)
	if err != nil {
		return models.Draft{}, mapAdapterError(err)
	}
	if !resp.Success || resp.Form == nil {
		return models.Draft{}, fmt.Errorf("%w: %s", adapter.ErrInvalidAIResponse, resp.Message)
	}

	draft := draftOf(s.keys.Generate(), *resp.Form)
	draft.FormID = 0
	return draft, s.Save(ctx, draft)
}

func (s *clientDraftService) Save(ctx context.Context, draft models.Draft) error {
	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return fmt.Errorf("saving draft %s: %w", draft.Key, err)
	}

	return nil
}

func (s *clientDraftService) Get(ctx context.Context, key string) (models.Draft, error) {
	return s.drafts.GetDraft(ctx, key)
}

func (s *clientDraftService) List(ctx context.Context) ([]models.Draft, error) {
	return s.drafts.ListDrafts(ctx)
}

func (s *clientDraftService) Delete(ctx context.Context, key string) error {
	return s.drafts.DeleteDraft(ctx, key)
}

func (s *clientDraftService) Publish(ctx context.Context, key string) (models.Form, error) {
	draft, err := s.drafts.GetDraft(ctx, key)
	if err != nil {
		return models.Form{}, fmt.Errorf("loading draft %s: %w", key, err)
	}

	payload := formshape.ToServerShape(draft.Data, draft.Title, draft.Description)

	var form models.Form
	if draft.FormID == 0 {
		form, err = s.adapter.CreateForm(ctx, payload)
	} else {
		form, err = s.adapter.UpdateForm(ctx, draft.FormID, payload)
	}
	if err != nil {
		return models.Form{}, mapAdapterError(err)
	}

	refreshed := draftOf(key, form)
	if err = s.Save(ctx, refreshed); err != nil {
		return models.Form{}, err
	}

	return form, nil
}

func draftOf(key string, form models.Form) models.Draft {
	return models.Draft{
		Key:         key,
		FormID:      form.ID,
		Title:       form.Title,
		Description: form.Description,
		Data:        formshape.ToUIShape(form),
	}
}
