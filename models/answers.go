package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	// QuestionColumnPrefix prefixes the question id in answer keys and report
	// column names.
	QuestionColumnPrefix = "question_"

	// UserIDColumn is the respondent column available to reports.
	UserIDColumn = "user_id"
)

// QuestionColumn returns the answer key of the question with the given id.
func QuestionColumn(id int64) string {
	return QuestionColumnPrefix + strconv.FormatInt(id, 10)
}

// ParseQuestionColumn extracts the question id from an answer key.
func ParseQuestionColumn(name string) (int64, bool) {
	raw, ok := strings.CutPrefix(name, QuestionColumnPrefix)
	if !ok || raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// Answers is a submission body keyed by QuestionColumn.
type Answers map[string]any

// Submission is one stored set of answers.
type Submission struct {
	ID          int64     `json:"id"`
	FormID      int64     `json:"form_id"`
	UserID      int64     `json:"user_id"`
	Answers     Answers   `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ResultRow is a flattened submission as returned by the results endpoint.
type ResultRow map[string]any

// Field describes a question as a report column.
type Field struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	DataType DataType     `json:"data_type"`
}

// ResultsQuery limits the raw result preview. Zero means no limit.
type ResultsQuery struct {
	Rows int
	Cols int
}
