package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/report"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

// Result row columns besides the question columns.
const (
	resultIDColumn          = "id"
	resultSubmittedAtColumn = "submitted_at"
)

type answerService struct {
	answerRepository store.AnswerRepository
	guard            formGuard
	publisher        events.Publisher

	logger *logger.Logger
}

func NewAnswerService(formRepository store.FormRepository, accessRepository store.AccessRepository, answerRepository store.AnswerRepository, publisher events.Publisher, logger *logger.Logger) AnswerService {
	return &answerService{
		answerRepository: answerRepository,
		guard:            formGuard{forms: formRepository, access: accessRepository},
		publisher:        publisher,
		logger:           logger,
	}
}

// Submit validates answers against the form and stores them.
//
// Keys must be question columns of the form. Values are converted by the
// question data type: NUMBER to float64 (null when unparsable), BOOLEAN to
// bool, everything else to text. Required questions must have a non-empty
// value.
func (s *answerService) Submit(ctx context.Context, userID, formID int64, answers models.Answers) (models.Submission, error) {
	log := logger.FromContext(ctx)

	form, err := s.guard.accessible(ctx, userID, formID)
	if err != nil {
		return models.Submission{}, err
	}
	if form.IsExpired {
		return models.Submission{}, ErrFormExpired
	}

	converted, err := convertAnswers(form, answers)
	if err != nil {
		log.Warn().Err(err).Int64("form_id", formID).Int64("user_id", userID).Msg("submission rejected")
		return models.Submission{}, err
	}

	saved, err := s.answerRepository.SaveSubmission(ctx, models.Submission{
		FormID:  formID,
		UserID:  userID,
		Answers: converted,
	})
	if err != nil {
		log.Err(err).Int64("form_id", formID).Int64("user_id", userID).Msg("saving submission failed")
		return models.Submission{}, fmt.Errorf("saving submission failed: %w", err)
	}

	if err = s.publisher.Publish(ctx, events.TopicFormSubmitted, events.FormEvent{FormID: formID, UserID: userID}); err != nil {
		log.Err(err).Int64("form_id", formID).Msg("form.submitted event was not published")
	}

	return saved, nil
}

func convertAnswers(form models.Form, answers models.Answers) (models.Answers, error) {
	converted := make(models.Answers, len(answers))
	for key, value := range answers {
		id, ok := models.ParseQuestionColumn(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, key)
		}
		question, ok := form.QuestionByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, key)
		}
		converted[models.QuestionColumn(id)] = convertValue(question.DataType, value)
	}

	for _, question := range form.Questions() {
		if !formshape.RequiredFromOptional(question.Optional) {
			continue
		}
		if isEmptyAnswer(converted[models.QuestionColumn(question.ID)]) {
			return nil, fmt.Errorf("%w: %q", ErrMissingAnswer, question.Text)
		}
	}

	return converted, nil
}

func convertValue(dataType models.DataType, value any) any {
	switch dataType {
	case models.DataNumber:
		switch v := value.(type) {
		case float64:
			return v
		case string:
			// NaN and Inf spellings are not storable numbers
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil
			}
			return f
		default:
			return nil
		}

	case models.DataBoolean:
		switch v := value.(type) {
		case bool:
			return v
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil
			}
			return b
		default:
			return nil
		}

	default:
		switch v := value.(type) {
		case nil:
			return nil
		case string:
			return v
		case []any:
			// checkbox questions answer with a list of choice titles
			titles := make([]any, 0, len(v))
			for _, item := range v {
				titles = append(titles, fmt.Sprint(item))
			}
			return titles
		default:
			return fmt.Sprint(v)
		}
	}
}

func isEmptyAnswer(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	}

	return false
}

func (s *answerService) Results(ctx context.Context, userID, formID int64, query models.ResultsQuery) ([]models.ResultRow, error) {
	form, err := s.guard.owned(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.answerRepository.ListSubmissions(ctx, formID, query.Rows)
	if err != nil {
		return nil, fmt.Errorf("listing submissions failed: %w", err)
	}

	fields := fieldsOf(form)
	if query.Cols > 0 && query.Cols < len(fields) {
		fields = fields[:query.Cols]
	}

	return flatten(submissions, fields), nil
}

func (s *answerService) ExportResults(ctx context.Context, userID, formID int64, w io.Writer) error {
	form, err := s.guard.owned(ctx, userID, formID)
	if err != nil {
		return err
	}

	submissions, err := s.answerRepository.ListSubmissions(ctx, formID, 0)
	if err != nil {
		return fmt.Errorf("listing submissions failed: %w", err)
	}

	fields := fieldsOf(form)
	columns := []report.Column{
		{Key: resultIDColumn, Title: "ID"},
		{Key: models.UserIDColumn, Title: "User"},
		{Key: resultSubmittedAtColumn, Title: "Submitted at"},
	}
	for _, field := range fields {
		columns = append(columns, report.Column{Key: field.Name, Title: field.Text})
	}

	if err = report.WriteXLSX(w, columns, flatten(submissions, fields)); err != nil {
		logger.FromContext(ctx).Err(err).Int64("form_id", formID).Msg("xlsx export failed")
		return fmt.Errorf("xlsx export failed: %w", err)
	}

	return nil
}

// flatten turns submissions into result rows holding the given question
// columns. Unanswered questions are present with a nil value.
func flatten(submissions []models.Submission, fields []models.Field) []models.ResultRow {
	rows := make([]models.ResultRow, 0, len(submissions))
	for _, submission := range submissions {
		row := models.ResultRow{
			resultIDColumn:          submission.ID,
			models.UserIDColumn:     submission.UserID,
			resultSubmittedAtColumn: submission.SubmittedAt,
		}
		for _, field := range fields {
			row[field.Name] = submission.Answers[field.Name]
		}
		rows = append(rows, row)
	}

	return rows
}
