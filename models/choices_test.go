package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoices_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Choices
	}{
		{name: "strings", in: `["a","b"]`, want: Choices{"a", "b"}},
		{name: "null", in: `null`, want: nil},
		{name: "single string", in: `"yes"`, want: Choices{"yes"}},
		{name: "objects", in: `[{"title":"x"},{"text":"y"},{"value":3}]`, want: Choices{"x", "y", "3"}},
		{name: "scalars", in: `[1, 2.5, true, null]`, want: Choices{"1", "2.5", "true"}},
		{name: "object without known keys", in: `[{"label": "z", "n": 1}]`, want: Choices{`{"label":"z","n":1}`}},
		{name: "single object without known keys", in: `{"label":"z"}`, want: Choices{`{"label":"z"}`}},
		{name: "title wins over value", in: `[{"value":"v","title":"t"}]`, want: Choices{"t"}},
		{name: "null title", in: `[{"title":null}]`, want: Choices{"null"}},
		{name: "object title", in: `[{"title":{"ru":"да"}}]`, want: Choices{""}},
		{name: "nested arrays are skipped", in: `["a",["b"],"c"]`, want: Choices{"a", "c"}},
		{name: "single number", in: `42`, want: Choices{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Choices
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestion_MalformedChoicesDoNotFailTheForm(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"text":"q","choices":[["a"],null]}`), &q))
	assert.Equal(t, "q", q.Text)
	assert.Equal(t, Choices{}, q.Choices)
}

func TestChoices_MarshalJSON_NilIsEmptyArray(t *testing.T) {
	q := Question{Text: "q"}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"choices":[]`)
}

func TestParseQuestionColumn(t *testing.T) {
	id, ok := ParseQuestionColumn("question_42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"question_", "question_x", "user_id", "question_-1", "q_1"} {
		_, ok := ParseQuestionColumn(bad)
		assert.False(t, ok, bad)
	}

	assert.Equal(t, "question_7", QuestionColumn(7))
}

func TestReportRequest_FieldNames(t *testing.T) {
	req := ReportRequest{GroupBy: []string{"g", "h"}, Target: "v", Func: FuncSum}
	assert.Equal(t, "g_h", req.GroupFieldName())
	assert.Equal(t, "SUM_v", req.ResultFieldName())
	assert.True(t, req.Func.Valid())
	assert.False(t, AggregateFunc("MEDIAN").Valid())
}

func TestAIFormRequest_WithDefaults(t *testing.T) {
	req := AIFormRequest{Prompt: "survey"}.WithDefaults()
	assert.Equal(t, DefaultAIFormType, req.FormType)
	assert.Equal(t, DefaultAILanguage, req.Language)
	assert.Equal(t, DefaultAIMaxQuestions, req.MaxQuestions)

	kept := AIFormRequest{Prompt: "p", FormType: "quiz", Language: "de", MaxQuestions: 3}.WithDefaults()
	assert.Equal(t, "quiz", kept.FormType)
	assert.Equal(t, "de", kept.Language)
	assert.Equal(t, 3, kept.MaxQuestions)
}
