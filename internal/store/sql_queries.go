package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, username, name, password_hash, role, provider, created_at`

const (
	createUser = `INSERT INTO users (username, name, password_hash, role, provider)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns + `;`

	upsertExternalUser = `INSERT INTO users (username, name, password_hash, role, provider)
	VALUES ($1, $2, '', $3, $4)
	ON CONFLICT (username) DO UPDATE
	SET name = CASE WHEN users.name = '' THEN EXCLUDED.name ELSE users.name END
	RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	findUserByID       = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	listUsers          = `SELECT ` + userColumns + ` FROM users ORDER BY user_id;`
)

const formHeaderColumns = `form_id, title, description, owner_id, is_template, is_active, is_expired, created_at, updated_at`

const (
	insertForm = `INSERT INTO forms (title, description, owner_id, is_template, is_active, is_expired)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + formHeaderColumns + `;`

	updateFormHeader = `UPDATE forms
	SET title = $1, description = $2, updated_at = now()
	WHERE form_id = $3
	RETURNING ` + formHeaderColumns + `;`

	selectFormHeader = `SELECT ` + formHeaderColumns + ` FROM forms WHERE form_id = $1;`

	upsertPage = `INSERT INTO form_pages (form_id, page_index)
	VALUES ($1, $2)
	ON CONFLICT (form_id, page_index) DO UPDATE SET page_index = EXCLUDED.page_index
	RETURNING page_id;`

	insertQuestion = `INSERT INTO questions (form_id, page_id, text, type, data_type, optional, choices, created_at_ms, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING question_id;`

	updateQuestion = `UPDATE questions
	SET page_id = $1, text = $2, type = $3, data_type = $4, optional = $5, choices = $6, created_at_ms = $7, position = $8
	WHERE question_id = $9 AND form_id = $10;`

	selectFormQuestions = `SELECT p.page_id, p.page_index,
		q.question_id, q.text, q.type, q.data_type, q.optional, q.choices, q.created_at_ms
	FROM form_pages p
	LEFT JOIN questions q ON q.page_id = p.page_id
	WHERE p.form_id = $1
	ORDER BY p.page_index, q.created_at_ms, q.position, q.question_id;`

	toggleTemplate = `UPDATE forms
	SET is_template = NOT is_template, updated_at = now()
	WHERE form_id = $1
	RETURNING is_template;`
)

const (
	revokeAccess     = `DELETE FROM form_allowed_users WHERE form_id = $1 AND user_id = $2;`
	listAllowedUsers = `SELECT user_id FROM form_allowed_users WHERE form_id = $1 ORDER BY user_id;`
	hasAccess        = `SELECT EXISTS (SELECT 1 FROM form_allowed_users WHERE form_id = $1 AND user_id = $2);`

	insertSubmission = `INSERT INTO form_answers (form_id, user_id, answers)
	VALUES ($1, $2, $3)
	RETURNING answer_id, submitted_at;`
)

func buildListFormsQuery(filter models.FormFilter) (string, []any, error) {
	columns := strings.Split(formHeaderColumns, ", ")
	for i, column := range columns {
		columns[i] = "f." + column
	}

	query := psql.Select(columns...).From("forms f")

	if filter.OwnerID > 0 {
		query = query.Where(sq.Eq{"f.owner_id": filter.OwnerID})
	}
	if filter.SharedWith > 0 {
		query = query.
			Join("form_allowed_users a ON a.form_id = f.form_id").
			Where(sq.Eq{"a.user_id": filter.SharedWith})
	}
	if filter.OnlyTemplates {
		query = query.Where(sq.Eq{"f.is_template": true})
	}
	if filter.OnlyActive {
		query = query.Where(sq.Eq{"f.is_active": true, "f.is_expired": false})
	}

	return query.OrderBy("f.form_id").ToSql()
}

func buildDeleteStaleQuestionsQuery(formID int64, keepIDs []int64) (string, []any, error) {
	return psql.Delete("questions").
		Where(sq.Eq{"form_id": formID}).
		Where(sq.NotEq{"question_id": keepIDs}).
		ToSql()
}

func buildDeleteStalePagesQuery(formID int64, keepIndexes []int) (string, []any, error) {
	return psql.Delete("form_pages").
		Where(sq.Eq{"form_id": formID}).
		Where(sq.NotEq{"page_index": keepIndexes}).
		ToSql()
}

func buildSetStatusQuery(formID int64, status models.FormStatus) (string, []any, error) {
	query := psql.Update("forms").Set("updated_at", sq.Expr("now()"))
	if status.IsActive != nil {
		query = query.Set("is_active", *status.IsActive)
	}
	if status.IsExpired != nil {
		query = query.Set("is_expired", *status.IsExpired)
	}

	return query.
		Where(sq.Eq{"form_id": formID}).
		Suffix("RETURNING " + formHeaderColumns).
		ToSql()
}

func buildGrantAccessQuery(formID int64, userIDs []int64) (string, []any, error) {
	query := psql.Insert("form_allowed_users").Columns("form_id", "user_id")
	for _, userID := range userIDs {
		query = query.Values(formID, userID)
	}

	return query.Suffix("ON CONFLICT DO NOTHING").ToSql()
}

func buildListSubmissionsQuery(formID int64, limit int) (string, []any, error) {
	query := psql.Select("answer_id", "form_id", "user_id", "answers", "submitted_at").
		From("form_answers").
		Where(sq.Eq{"form_id": formID}).
		OrderBy("answer_id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}

// buildReportQuery groups the answers of a form by the requested columns and
// reduces the target column. Grouping happens on the tuple of column values,
// the "_"-joined label is only produced for output. Groups are returned in
// order of their first submission. Group values follow JavaScript String()
// rendering of the stored JSON ("undefined" for a missing key, "null" for
// null, comma-joined arrays).
func buildReportQuery(formID int64, req models.ReportRequest) (string, []any, error) {
	inner := sq.Select("answer_id").From("form_answers").Where(sq.Eq{"form_id": formID})

	groupColumns := make([]string, 0, len(req.GroupBy))
	for i, column := range req.GroupBy {
		expr, err := groupValueExpr(column)
		if err != nil {
			return "", nil, err
		}
		alias := fmt.Sprintf("g%d", i)
		inner = inner.Column(expr + " AS " + alias)
		groupColumns = append(groupColumns, alias)
	}

	aggregate, err := aggregateExpr(req.Func)
	if err != nil {
		return "", nil, err
	}
	if req.Func != models.FuncCount {
		target, err := numericValueExpr(req.Target)
		if err != nil {
			return "", nil, err
		}
		inner = inner.Column(target + " AS target")
	}

	groupValue := "''"
	if len(groupColumns) > 0 {
		groupValue = fmt.Sprintf("concat_ws('%s', %s)", models.ReportSeparator, strings.Join(groupColumns, ", "))
	}

	outer := psql.Select(groupValue+" AS group_value", aggregate+" AS aggregate").
		FromSelect(inner, "s")
	if len(groupColumns) > 0 {
		outer = outer.GroupBy(groupColumns...)
	}

	return outer.
		Having("COUNT(*) > 0").
		OrderBy("MIN(answer_id)").
		ToSql()
}

func aggregateExpr(fn models.AggregateFunc) (string, error) {
	switch fn {
	case models.FuncCount:
		return "COUNT(*)::float8", nil
	case models.FuncSum:
		return "SUM(target)", nil
	case models.FuncAvg:
		return "AVG(target)", nil
	case models.FuncMax:
		return "MAX(target)", nil
	case models.FuncMin:
		return "MIN(target)", nil
	}

	return "", fmt.Errorf("%w: unknown function %q", ErrInvalidReportColumn, fn)
}

// answerKey returns the canonical JSON key of a report column. Only digits
// reach the SQL text.
func answerKey(column string) (string, error) {
	id, ok := models.ParseQuestionColumn(column)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportColumn, column)
	}

	return models.QuestionColumn(id), nil
}

func groupValueExpr(column string) (string, error) {
	if column == models.UserIDColumn {
		return "user_id::text", nil
	}

	key, err := answerKey(column)
	if err != nil {
		return "", err
	}

	value := fmt.Sprintf("answers->'%s'", key)
	return fmt.Sprintf(`CASE
		WHEN %[1]s IS NULL THEN 'undefined'
		WHEN jsonb_typeof(%[1]s) = 'array' THEN COALESCE((SELECT string_agg(COALESCE(e, ''), ',') FROM jsonb_array_elements_text(%[1]s) AS e), '')
		WHEN jsonb_typeof(%[1]s) = 'object' THEN '[object Object]'
		ELSE COALESCE(answers->>'%[2]s', 'null')
	END`, value, key), nil
}

func numericValueExpr(column string) (string, error) {
	if column == models.UserIDColumn {
		return "user_id::float8", nil
	}

	key, err := answerKey(column)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("CASE WHEN jsonb_typeof(answers->'%[1]s') = 'number' THEN (answers->>'%[1]s')::float8 END", key), nil
}
