package tui

import (
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillForm() models.Form {
	return models.Form{
		ID: 3,
		Pages: []models.Page{
			{PageIndex: 0, Questions: []models.Question{
				{ID: 10, Text: "Name", Type: models.QuestionText, DataType: models.DataShortText},
				{ID: 11, Text: "Age", Type: models.QuestionText, DataType: models.DataNumber, Optional: true},
			}},
			{PageIndex: 1, Questions: []models.Question{
				{ID: 12, Text: "Color", Type: models.QuestionRadio, DataType: models.DataShortText, Choices: models.Choices{"red", "green"}},
				{ID: 13, Text: "Pets", Type: models.QuestionCheckbox, DataType: models.DataShortText, Choices: models.Choices{"cat", "dog", "fish"}, Optional: true},
			}},
		},
	}
}

func TestCollectAnswers(t *testing.T) {
	pages := newQuestionInputs(fillForm())
	require.Len(t, pages, 2)

	pages[0][0].text = "  Ann "
	pages[0][1].text = "41,5"
	pages[1][0].cursor = 1
	pages[1][0].pick()
	pages[1][1].cursor = 0
	pages[1][1].pick()
	pages[1][1].cursor = 2
	pages[1][1].pick()

	answers, err := collectAnswers(pages)
	require.NoError(t, err)
	assert.Equal(t, models.Answers{
		"question_10": "Ann",
		"question_11": 41.5,
		"question_12": "green",
		"question_13": []any{"cat", "fish"},
	}, answers)
}

func TestCollectAnswers_SkipsEmptyOptional(t *testing.T) {
	pages := newQuestionInputs(fillForm())
	pages[0][0].text = "Ann"
	pages[1][0].pick()

	answers, err := collectAnswers(pages)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
	assert.NotContains(t, answers, "question_11")
	assert.NotContains(t, answers, "question_13")
}

func TestCollectAnswers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(pages [][]*questionInput)
		wantErr string
	}{
		{
			name:    "missing required text",
			prepare: func(pages [][]*questionInput) { pages[1][0].pick() },
			wantErr: `"Name": обязательный вопрос`,
		},
		{
			name: "missing required choice",
			prepare: func(pages [][]*questionInput) {
				pages[0][0].text = "Ann"
			},
			wantErr: `"Color": обязательный вопрос`,
		},
		{
			name: "not a number",
			prepare: func(pages [][]*questionInput) {
				pages[0][0].text = "Ann"
				pages[0][1].text = "forty"
			},
			wantErr: `"Age": ожидается число`,
		},
		{
			name: "NaN is not a number",
			prepare: func(pages [][]*questionInput) {
				pages[0][0].text = "Ann"
				pages[0][1].text = "NaN"
			},
			wantErr: `"Age": ожидается число`,
		},
		{
			name: "infinity is not a number",
			prepare: func(pages [][]*questionInput) {
				pages[0][0].text = "Ann"
				pages[0][1].text = "Infinity"
			},
			wantErr: `"Age": ожидается число`,
		},
		{
			name: "inf is not a number",
			prepare: func(pages [][]*questionInput) {
				pages[0][0].text = "Ann"
				pages[0][1].text = "-inf"
			},
			wantErr: `"Age": ожидается число`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := newQuestionInputs(fillForm())
			tt.prepare(pages)

			_, err := collectAnswers(pages)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestQuestionInput_RadioKeepsSingleChoice(t *testing.T) {
	in := &questionInput{
		question: models.Question{Type: models.QuestionRadio, Choices: models.Choices{"a", "b"}},
		chosen:   map[int]bool{},
	}

	in.pick()
	in.cursor = 1
	in.pick()
	assert.Equal(t, []any{"b"}, in.chosenTitles())

	in.pick()
	assert.Empty(t, in.chosenTitles())
}

func TestQuestionInput_Value(t *testing.T) {
	tests := []struct {
		name     string
		question models.Question
		text     string
		want     any
		wantOK   bool
		wantErr  bool
	}{
		{name: "boolean yes", question: models.Question{DataType: models.DataBoolean}, text: "да", want: true, wantOK: true},
		{name: "boolean false", question: models.Question{DataType: models.DataBoolean}, text: "false", want: false, wantOK: true},
		{name: "boolean garbage", question: models.Question{DataType: models.DataBoolean}, text: "maybe", wantErr: true},
		{name: "email", question: models.Question{Type: models.QuestionEmail, DataType: models.DataEmail}, text: "a@b.io", want: "a@b.io", wantOK: true},
		{name: "bad email", question: models.Question{Type: models.QuestionEmail, DataType: models.DataEmail}, text: "a-at-b", wantErr: true},
		{name: "blank", question: models.Question{DataType: models.DataShortText}, text: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &questionInput{question: tt.question, text: tt.text, chosen: map[int]bool{}}

			got, ok, err := in.value()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
