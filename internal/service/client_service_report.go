package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/report"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type clientReportService struct {
	results store.LocalResultsRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger
	now     func() time.Time
}

func NewClientReportService(results store.LocalResultsRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientReportService {
	return &clientReportService{
		results: results,
		adapter: serverAdapter,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *clientReportService) Fields(ctx context.Context, formID int64) ([]models.Field, error) {
	fields, err := s.adapter.GetFields(ctx, formID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return fields, nil
}

func (s *clientReportService) Query(ctx context.Context, formID int64, req models.ReportRequest) (ClientReport, error) {
	result, err := s.adapter.QueryReport(ctx, formID, req)
	if err == nil {
		return ClientReport{ReportResult: result, FetchedAt: s.now().UTC()}, nil
	}
	if !isServerUnavailable(err) {
		return ClientReport{}, mapAdapterError(err)
	}

	s.logger.Warn().Err(err).Int64("form_id", formID).Msg("server report failed, aggregating locally")
	return s.queryLocal(ctx, formID, req)
}

func (s *clientReportService) queryLocal(ctx context.Context, formID int64, req models.ReportRequest) (ClientReport, error) {
	rows, fetchedAt, err := s.download(ctx, formID)
	if err != nil {
		rows, fetchedAt, err = s.results.GetResults(ctx, formID)
	}
	if errors.Is(err, store.ErrCachedResultsNotFound) {
		return ClientReport{}, ErrReportUnavailable
	}
	if err != nil {
		return ClientReport{}, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}

	aggregated, err := report.Aggregate(rows, req.GroupBy, req.Target, req.Func)
	if err != nil {
		return ClientReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if aggregated == nil {
		aggregated = []models.ReportRow{}
	}

	chartURL, err := report.ChartURL(req, aggregated)
	if err != nil {
		s.logger.Warn().Err(err).Msg("chart url was not built")
	}

	return ClientReport{
		ReportResult: models.ReportResult{Rows: aggregated, ChartURL: chartURL},
		Local:        true,
		FetchedAt:    fetchedAt,
	}, nil
}

// download fetches every raw result of the form and keeps a local copy.
func (s *clientReportService) download(ctx context.Context, formID int64) ([]models.ResultRow, time.Time, error) {
	rows, err := s.adapter.GetResults(ctx, formID, models.ResultsQuery{})
	if err != nil {
		return nil, time.Time{}, mapAdapterError(err)
	}

	if err = s.results.SaveResults(ctx, formID, rows); err != nil {
		s.logger.Warn().Err(err).Int64("form_id", formID).Msg("results were not kept locally")
	}

	return rows, s.now().UTC(), nil
}

func (s *clientReportService) RefreshResults(ctx context.Context, formID int64) error {
	_, _, err := s.download(ctx, formID)
	return err
}
