package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/jackc/pgerrcode"
)

// answerRepository stores every submission as one JSONB document in
// "form_answers".
type answerRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnswerRepository(db *DB, logger *logger.Logger) AnswerRepository {
	return &answerRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *answerRepository) SaveSubmission(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(submission.Answers)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.SaveSubmission").Msg("error encoding answers")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	row := a.QueryRowContext(ctx, insertSubmission, submission.FormID, submission.UserID, string(payload))
	if err = row.Scan(&submission.ID, &submission.SubmittedAt); err != nil {
		log.Err(err).Str("func", "*answerRepository.SaveSubmission").
			Int64("form_id", submission.FormID).
			Int64("user_id", submission.UserID).
			Msg("error saving submission")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Submission{}, ErrReferenceNotFound
		}
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return submission, nil
}

func (a *answerRepository) ListSubmissions(ctx context.Context, formID int64, limit int) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubmissionsQuery(formID, limit)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.ListSubmissions").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var submissions []models.Submission
	err = a.withRetry(ctx, func() error {
		rows, err := a.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		submissions = make([]models.Submission, 0, 50)
		for rows.Next() {
			var (
				submission models.Submission
				payload    []byte
			)
			if err = rows.Scan(&submission.ID, &submission.FormID, &submission.UserID, &payload, &submission.SubmittedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			if err = json.Unmarshal(payload, &submission.Answers); err != nil {
				return fmt.Errorf("%w: %w", ErrDecodingJSON, err)
			}
			submissions = append(submissions, submission)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.ListSubmissions").Int64("form_id", formID).Msg("error listing submissions")
		return nil, err
	}

	return submissions, nil
}
