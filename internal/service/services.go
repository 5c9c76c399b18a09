package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	FormService    FormService
	AccessService  AccessService
	AnswerService  AnswerService
	ReportService  ReportService
	AIService      AIService
	AppInfoService AppInfoService
}

// NewServices wires the server services. Services that take request bodies
// are wrapped with their validation decorators.
func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	verifier := adapter.NewGoogleVerifier(cfg.OAuth, logger)
	generator := adapter.NewAIGenerator(cfg.AI, logger)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, verifier, cfg.App, logger),
	)
	formService := NewFormValidationService().Wrap(
		NewFormService(storages.FormRepository, storages.AccessRepository, publisher, logger),
	)

	return &Services{
		AuthService:   authService,
		FormService:   formService,
		AccessService: NewAccessService(storages.FormRepository, storages.AccessRepository, logger),
		AnswerService: NewAnswerService(storages.FormRepository, storages.AccessRepository, storages.AnswerRepository, publisher, logger),
		ReportService: NewReportValidationService().Wrap(
			NewReportService(storages.FormRepository, storages.AccessRepository, storages.ReportRepository, storages.ReportCache, logger),
		),
		AIService:      NewAIValidationService().Wrap(NewAIService(generator, formService, logger)),
		AppInfoService: appInfoService,
	}, nil
}
