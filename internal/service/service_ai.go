package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
)

type aiService struct {
	generator     adapter.AIGenerator
	formService   FormService
	formValidator validators.Validator

	logger *logger.Logger
}

func NewAIService(generator adapter.AIGenerator, formService FormService, logger *logger.Logger) AIService {
	return &aiService{
		generator:     generator,
		formService:   formService,
		formValidator: validators.NewFormValidator(),
		logger:        logger,
	}
}

// PreviewForm asks the generator for a form, drops questions beyond
// MaxQuestions together with pages left empty, and checks the structure of
// the result.
func (s *aiService) PreviewForm(ctx context.Context, req models.AIFormRequest) (models.Form, error) {
	log := logger.FromContext(ctx)
	req = req.WithDefaults()

	form, err := s.generator.GenerateForm(ctx, req)
	if err != nil {
		log.Err(err).Str("form_type", req.FormType).Msg("form generation failed")
		return models.Form{}, fmt.Errorf("form generation failed: %w", err)
	}

	form = truncateQuestions(form, req.MaxQuestions)

	err = s.formValidator.Validate(ctx, form, validators.FieldTitle, validators.FieldPages, validators.FieldQuestions)
	if err != nil {
		log.Warn().Err(err).Msg("generated form is invalid")
		return models.Form{}, fmt.Errorf("%w: %w", adapter.ErrInvalidAIResponse, err)
	}

	return form, nil
}

func (s *aiService) GenerateForm(ctx context.Context, userID int64, req models.AIFormRequest) (models.Form, error) {
	form, err := s.PreviewForm(ctx, req)
	if err != nil {
		return models.Form{}, err
	}

	return s.formService.CreateForm(ctx, userID, models.ServerFormPayload{
		Title:       form.Title,
		Description: form.Description,
		Pages:       form.Pages,
	})
}

func truncateQuestions(form models.Form, limit int) models.Form {
	remaining := limit
	pages := make([]models.Page, 0, len(form.Pages))
	for _, page := range form.Pages {
		if remaining <= 0 {
			break
		}
		if len(page.Questions) > remaining {
			page.Questions = page.Questions[:remaining]
		}
		if len(page.Questions) == 0 {
			continue
		}
		remaining -= len(page.Questions)
		page.PageIndex = len(pages)
		pages = append(pages, page)
	}
	form.Pages = pages

	return form
}
