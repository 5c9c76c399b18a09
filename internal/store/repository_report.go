package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
)

// reportRepository pushes report aggregation down to PostgreSQL.
//
// Unlike the in-memory aggregator, non-numeric targets are ignored by the SQL
// reducers instead of turning the result into NaN. A group whose every target
// is non-numeric yields a nil aggregate.
type reportRepository struct {
	*DB
	logger *logger.Logger
}

func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	return &reportRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reportRepository) Aggregate(ctx context.Context, formID int64, req models.ReportRequest) ([]models.ReportRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReportQuery(formID, req)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Aggregate").Int64("form_id", formID).Msg("failed to create report query")
		return nil, err
	}

	groupField := req.GroupFieldName()
	resultField := req.ResultFieldName()

	var result []models.ReportRow
	err = r.withRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		result = make([]models.ReportRow, 0, 16)
		for rows.Next() {
			var (
				group     string
				aggregate sql.NullFloat64
			)
			if err = rows.Scan(&group, &aggregate); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}

			row := models.ReportRow{groupField: group, resultField: nil}
			if aggregate.Valid {
				row[resultField] = aggregate.Float64
			}
			result = append(result, row)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Aggregate").Int64("form_id", formID).Msg("error running report query")
		return nil, err
	}

	return result, nil
}
