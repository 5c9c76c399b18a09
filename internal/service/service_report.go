package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/report"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type reportService struct {
	reportRepository store.ReportRepository
	cache            store.ReportCache
	guard            formGuard

	logger *logger.Logger
}

func NewReportService(formRepository store.FormRepository, accessRepository store.AccessRepository, reportRepository store.ReportRepository, cache store.ReportCache, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		cache:            cache,
		guard:            formGuard{forms: formRepository, access: accessRepository},
		logger:           logger,
	}
}

// Query runs a group-by/aggregate report over the submissions of a form
// owned by userID. Results are served from the report cache when possible.
// A cache failure never fails the query.
func (s *reportService) Query(ctx context.Context, userID, formID int64, req models.ReportRequest) (models.ReportResult, error) {
	log := logger.FromContext(ctx).With().Int64("form_id", formID).Logger()

	form, err := s.guard.owned(ctx, userID, formID)
	if err != nil {
		return models.ReportResult{}, err
	}
	if err = checkReportColumns(form, req); err != nil {
		return models.ReportResult{}, err
	}

	cached, key, found, err := s.cache.Get(ctx, formID, req)
	if err != nil {
		log.Warn().Err(err).Msg("report cache read failed")
	}
	if found {
		return cached, nil
	}

	rows, err := s.reportRepository.Aggregate(ctx, formID, req)
	if err != nil {
		log.Err(err).Any("request", req).Msg("report query failed")
		return models.ReportResult{}, fmt.Errorf("report query failed: %w", err)
	}
	if rows == nil {
		rows = []models.ReportRow{}
	}

	chartURL, err := report.ChartURL(req, rows)
	if err != nil {
		return models.ReportResult{}, fmt.Errorf("chart rendering failed: %w", err)
	}

	result := models.ReportResult{Rows: rows, ChartURL: chartURL}
	if err = s.cache.Set(ctx, key, result); err != nil {
		log.Warn().Err(err).Msg("report cache write failed")
	}

	return result, nil
}

// checkReportColumns allows user_id and the question columns of form.
// Functions other than COUNT need a numeric target.
func checkReportColumns(form models.Form, req models.ReportRequest) error {
	for _, column := range append([]string{req.Target}, req.GroupBy...) {
		if _, ok := reportColumn(form, column); !ok {
			return fmt.Errorf("%w: %q", store.ErrInvalidReportColumn, column)
		}
	}

	if req.Func == models.FuncCount {
		return nil
	}

	dataType, _ := reportColumn(form, req.Target)
	if dataType != models.DataNumber {
		return fmt.Errorf("%w: %q", ErrNonNumericTarget, req.Target)
	}

	return nil
}

// reportColumn resolves the data type of a report column. user_id is
// numeric.
func reportColumn(form models.Form, column string) (models.DataType, bool) {
	if column == models.UserIDColumn {
		return models.DataNumber, true
	}

	id, ok := models.ParseQuestionColumn(column)
	if !ok {
		return "", false
	}
	question, ok := form.QuestionByID(id)
	if !ok {
		return "", false
	}

	return question.DataType, true
}
