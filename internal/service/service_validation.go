package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
)

// AuthValidationService checks request DTOs before they reach the wrapped
// AuthService. Methods without a request body pass through.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewStructValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.SignUp(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.Login(ctx, req)
}

func (v *AuthValidationService) LoginWithGoogle(ctx context.Context, req models.GoogleLoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AuthService.LoginWithGoogle(ctx, req)
}

// FormValidationService rejects structurally invalid form bodies.
type FormValidationService struct {
	FormService
	validator validators.Validator
}

func NewFormValidationService() FormServiceWrapper {
	return &FormValidationService{validator: validators.NewFormValidator()}
}

func (v *FormValidationService) Wrap(inner FormService) FormService {
	v.FormService = inner
	return v
}

func (v *FormValidationService) CreateForm(ctx context.Context, userID int64, payload models.ServerFormPayload) (models.Form, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.FormService.CreateForm(ctx, userID, payload)
}

func (v *FormValidationService) UpdateForm(ctx context.Context, userID, formID int64, payload models.ServerFormPayload) (models.Form, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.FormService.UpdateForm(ctx, userID, formID, payload)
}

type ReportValidationService struct {
	ReportService
	validator validators.Validator
}

func NewReportValidationService() ReportServiceWrapper {
	return &ReportValidationService{validator: validators.NewStructValidator()}
}

func (v *ReportValidationService) Wrap(inner ReportService) ReportService {
	v.ReportService = inner
	return v
}

func (v *ReportValidationService) Query(ctx context.Context, userID, formID int64, req models.ReportRequest) (models.ReportResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ReportResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ReportService.Query(ctx, userID, formID, req)
}

type AIValidationService struct {
	AIService
	validator validators.Validator
}

func NewAIValidationService() AIServiceWrapper {
	return &AIValidationService{validator: validators.NewStructValidator()}
}

func (v *AIValidationService) Wrap(inner AIService) AIService {
	v.AIService = inner
	return v
}

func (v *AIValidationService) PreviewForm(ctx context.Context, req models.AIFormRequest) (models.Form, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AIService.PreviewForm(ctx, req)
}

func (v *AIValidationService) GenerateForm(ctx context.Context, userID int64, req models.AIFormRequest) (models.Form, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.AIService.GenerateForm(ctx, userID, req)
}
