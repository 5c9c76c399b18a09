package service

import (
	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	FormService    ClientFormService
	DraftService   ClientDraftService
	ReportService  ClientReportService
	ResultsSyncJob ClientResultsSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	formSvc := NewClientFormService(serverAdapter)
	reportSvc := NewClientReportService(localStore.ResultsRepository, serverAdapter, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		FormService:    formSvc,
		DraftService:   NewClientDraftService(localStore.DraftRepository, serverAdapter),
		ReportService:  reportSvc,
		ResultsSyncJob: NewClientResultsSyncJob(formSvc, reportSvc, logger),
	}
}
