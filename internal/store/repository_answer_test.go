package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnswerRepo(t *testing.T) (*answerRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &answerRepository{DB: db, logger: db.logger}, mock
}

func TestSaveSubmission(t *testing.T) {
	repo, mock := newTestAnswerRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO form_answers").
		WithArgs(int64(1), int64(2), `{"question_3":"blue"}`).
		WillReturnRows(sqlmock.NewRows([]string{"answer_id", "submitted_at"}).AddRow(10, now))

	saved, err := repo.SaveSubmission(context.Background(), models.Submission{
		FormID:  1,
		UserID:  2,
		Answers: models.Answers{"question_3": "blue"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.Equal(t, now, saved.SubmittedAt)
}

func TestSaveSubmission_UnknownForm(t *testing.T) {
	repo, mock := newTestAnswerRepo(t)

	mock.ExpectQuery("INSERT INTO form_answers").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.SaveSubmission(context.Background(), models.Submission{FormID: 1, UserID: 2})
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestListSubmissions(t *testing.T) {
	repo, mock := newTestAnswerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT answer_id, form_id, user_id, answers, submitted_at FROM form_answers").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"answer_id", "form_id", "user_id", "answers", "submitted_at"}).
			AddRow(1, 1, 2, []byte(`{"question_3":"blue","question_4":7}`), now).
			AddRow(2, 1, 3, []byte(`{}`), now))

	subs, err := repo.ListSubmissions(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "blue", subs[0].Answers["question_3"])
	assert.Equal(t, 7.0, subs[0].Answers["question_4"])
	assert.Empty(t, subs[1].Answers)
}

func TestListSubmissions_BadJSON(t *testing.T) {
	repo, mock := newTestAnswerRepo(t)

	mock.ExpectQuery("FROM form_answers").
		WillReturnRows(sqlmock.NewRows([]string{"answer_id", "form_id", "user_id", "answers", "submitted_at"}).
			AddRow(1, 1, 2, []byte(`{`), time.Now()))

	_, err := repo.ListSubmissions(context.Background(), 1, 5)
	require.ErrorIs(t, err, ErrDecodingJSON)
}
