package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/jackc/pgerrcode"
)

// formRepository is the PostgreSQL-backed implementation of [FormRepository].
// A form is stored as a header row in "forms", one row per page in
// "form_pages" and one row per question in "questions".
type formRepository struct {
	*DB
	logger *logger.Logger
}

func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	return &formRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateForm inserts the header, pages and questions of form in a single
// transaction and returns the stored form with every id assigned.
func (f *formRepository) CreateForm(ctx context.Context, form models.Form) (models.Form, error) {
	log := logger.FromContext(ctx)

	err := f.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, insertForm, form.Title, form.Description, form.OwnerID, form.IsTemplate, form.IsActive, form.IsExpired)
		header, err := scanFormHeader(row)
		if err != nil {
			if postgresError(err) == pgerrcode.ForeignKeyViolation {
				return ErrReferenceNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		header.Pages, err = f.savePages(ctx, tx, header.ID, form.Pages)
		if err != nil {
			return err
		}
		form = header

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*formRepository.CreateForm").Int64("owner_id", form.OwnerID).Msg("error creating form")
		return models.Form{}, err
	}

	return form, nil
}

// GetForm loads the form header followed by its pages and questions.
func (f *formRepository) GetForm(ctx context.Context, formID int64) (models.Form, error) {
	log := logger.FromContext(ctx)

	var form models.Form
	err := f.withRetry(ctx, func() error {
		var err error
		form, err = f.loadForm(ctx, f.DB.DB, formID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrFormNotFound) {
			log.Err(err).Str("func", "*formRepository.GetForm").Int64("form_id", formID).Msg("error loading form")
		}
		return models.Form{}, err
	}

	return form, nil
}

// ListForms returns form headers matching filter ordered by id.
func (f *formRepository) ListForms(ctx context.Context, filter models.FormFilter) ([]models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFormsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.ListForms").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var forms []models.Form
	err = f.withRetry(ctx, func() error {
		rows, err := f.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		forms = make([]models.Form, 0, 16)
		for rows.Next() {
			form, scanErr := scanFormHeader(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			forms = append(forms, form)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*formRepository.ListForms").
			Int64("owner_id", filter.OwnerID).
			Int64("shared_with", filter.SharedWith).
			Msg("error listing forms")
		return nil, err
	}

	return forms, nil
}

// UpdateForm replaces the title and description and merges the pages:
// pages are matched by index, questions by id. A question whose id does not
// belong to the form is inserted as a new one. Pages and questions that are
// no longer present are deleted.
func (f *formRepository) UpdateForm(ctx context.Context, form models.Form) (models.Form, error) {
	log := logger.FromContext(ctx)

	var updated models.Form
	err := f.inTx(ctx, func(tx *sql.Tx) error {
		header, err := scanFormHeader(tx.QueryRowContext(ctx, updateFormHeader, form.Title, form.Description, form.ID))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFormNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err = f.savePages(ctx, tx, form.ID, form.Pages); err != nil {
			return err
		}

		updated, err = f.loadForm(ctx, tx, header.ID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrFormNotFound) {
			log.Err(err).Str("func", "*formRepository.UpdateForm").Int64("form_id", form.ID).Msg("error updating form")
		}
		return models.Form{}, err
	}

	return updated, nil
}

// ToggleTemplate flips the template flag and returns the new value.
func (f *formRepository) ToggleTemplate(ctx context.Context, formID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var isTemplate bool
	err := f.QueryRowContext(ctx, toggleTemplate, formID).Scan(&isTemplate)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, ErrFormNotFound
	case err != nil:
		log.Err(err).Str("func", "*formRepository.ToggleTemplate").Int64("form_id", formID).Msg("error toggling template flag")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return isTemplate, nil
}

// SetStatus applies the non-nil flags of status and returns the form header.
func (f *formRepository) SetStatus(ctx context.Context, formID int64, status models.FormStatus) (models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetStatusQuery(formID, status)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.SetStatus").Msg("failed to create query")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	form, err := scanFormHeader(f.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Form{}, ErrFormNotFound
	case err != nil:
		log.Err(err).Str("func", "*formRepository.SetStatus").Int64("form_id", formID).Msg("error updating form status")
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return form, nil
}

// savePages upserts pages by index, then updates or inserts their questions
// and finally removes pages and questions that were not mentioned. The
// returned pages carry the assigned ids.
func (f *formRepository) savePages(ctx context.Context, tx *sql.Tx, formID int64, pages []models.Page) ([]models.Page, error) {
	saved := make([]models.Page, 0, len(pages))
	keepIndexes := make([]int, 0, len(pages))
	keepQuestions := make([]int64, 0)

	for _, page := range pages {
		if err := tx.QueryRowContext(ctx, upsertPage, formID, page.PageIndex).Scan(&page.ID); err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", ErrExecutingStatement, page.PageIndex, err)
		}
		keepIndexes = append(keepIndexes, page.PageIndex)

		questions := make([]models.Question, 0, len(page.Questions))
		for position, question := range page.Questions {
			id, err := f.saveQuestion(ctx, tx, formID, page.ID, position, question)
			if err != nil {
				return nil, err
			}
			question.ID = id
			questions = append(questions, question)
			keepQuestions = append(keepQuestions, id)
		}
		page.Questions = questions
		saved = append(saved, page)
	}

	query, args, err := buildDeleteStaleQuestionsQuery(formID, keepQuestions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteStalePagesQuery(formID, keepIndexes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (f *formRepository) saveQuestion(ctx context.Context, tx *sql.Tx, formID, pageID int64, position int, q models.Question) (int64, error) {
	choices, err := json.Marshal(q.Choices)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	if q.ID > 0 {
		result, err := tx.ExecContext(ctx, updateQuestion, pageID, q.Text, q.Type, q.DataType, q.Optional, string(choices), q.CreatedAt, position, q.ID, formID)
		if err != nil {
			return 0, fmt.Errorf("%w: question %d: %w", ErrExecutingStatement, q.ID, err)
		}
		if affected, _ := result.RowsAffected(); affected > 0 {
			return q.ID, nil
		}
	}

	var id int64
	err = tx.QueryRowContext(ctx, insertQuestion, formID, pageID, q.Text, q.Type, q.DataType, q.Optional, string(choices), q.CreatedAt, position).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: question: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (f *formRepository) loadForm(ctx context.Context, q queryer, formID int64) (models.Form, error) {
	form, err := scanFormHeader(q.QueryRowContext(ctx, selectFormHeader, formID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Form{}, ErrFormNotFound
	}
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := q.QueryContext(ctx, selectFormQuestions, formID)
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	form.Pages = make([]models.Page, 0, 4)
	for rows.Next() {
		var (
			page       models.Page
			questionID sql.NullInt64
			text       sql.NullString
			qType      sql.NullString
			dataType   sql.NullString
			optional   sql.NullBool
			choices    []byte
			createdAt  sql.NullInt64
		)
		if err = rows.Scan(&page.ID, &page.PageIndex, &questionID, &text, &qType, &dataType, &optional, &choices, &createdAt); err != nil {
			return models.Form{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if n := len(form.Pages); n == 0 || form.Pages[n-1].ID != page.ID {
			page.Questions = make([]models.Question, 0)
			form.Pages = append(form.Pages, page)
		}

		// empty page
		if !questionID.Valid {
			continue
		}

		question := models.Question{
			ID:        questionID.Int64,
			Text:      text.String,
			Type:      models.QuestionType(qType.String),
			DataType:  models.DataType(dataType.String),
			Optional:  optional.Bool,
			CreatedAt: createdAt.Int64,
		}
		if len(choices) > 0 {
			if err = json.Unmarshal(choices, &question.Choices); err != nil {
				return models.Form{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
			}
		}

		last := &form.Pages[len(form.Pages)-1]
		last.Questions = append(last.Questions, question)
	}
	if err = rows.Err(); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return form, nil
}

func scanFormHeader(row rowScanner) (models.Form, error) {
	var form models.Form
	err := row.Scan(
		&form.ID,
		&form.Title,
		&form.Description,
		&form.OwnerID,
		&form.IsTemplate,
		&form.IsActive,
		&form.IsExpired,
		&form.CreatedAt,
		&form.UpdatedAt,
	)

	return form, err
}
