package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/go-playground/validator/v10"
)

var inputValidate = validator.New()

// questionInput is the answer being typed or picked for one question.
type questionInput struct {
	question models.Question

	text    string
	chosen  map[int]bool
	cursor  int
	touched bool
}

func newQuestionInputs(form models.Form) [][]*questionInput {
	pages := make([][]*questionInput, 0, len(form.Pages))
	for _, page := range form.Pages {
		inputs := make([]*questionInput, 0, len(page.Questions))
		for _, q := range page.Questions {
			inputs = append(inputs, &questionInput{question: q, chosen: make(map[int]bool)})
		}
		pages = append(pages, inputs)
	}
	return pages
}

// pick selects the choice under the cursor. Radio questions keep a single
// choice, checkbox questions toggle.
func (in *questionInput) pick() {
	if len(in.question.Choices) == 0 {
		return
	}
	in.touched = true

	if in.question.Type == models.QuestionRadio {
		was := in.chosen[in.cursor]
		clear(in.chosen)
		in.chosen[in.cursor] = !was
		return
	}
	in.chosen[in.cursor] = !in.chosen[in.cursor]
}

func (in *questionInput) chosenTitles() []any {
	titles := make([]any, 0, len(in.chosen))
	for i, title := range in.question.Choices {
		if in.chosen[i] {
			titles = append(titles, title)
		}
	}
	return titles
}

// value converts the input to the JSON value the server stores for the
// question's data type. ok is false for an empty answer.
func (in *questionInput) value() (v any, ok bool, err error) {
	q := in.question

	if q.Type.IsMulti() {
		titles := in.chosenTitles()
		if len(titles) == 0 {
			return nil, false, nil
		}
		if q.Type == models.QuestionRadio {
			return titles[0], true, nil
		}
		return titles, true, nil
	}

	text := strings.TrimSpace(in.text)
	if text == "" {
		return nil, false, nil
	}

	switch q.DataType {
	case models.DataNumber:
		f, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false, fmt.Errorf("%q: ожидается число", q.Text)
		}
		return f, true, nil
	case models.DataBoolean:
		b, ok := parseYesNo(text)
		if !ok {
			return nil, false, fmt.Errorf("%q: ожидается да или нет", q.Text)
		}
		return b, true, nil
	}

	if q.DataType == models.DataEmail || q.Type == models.QuestionEmail {
		if err := inputValidate.Var(text, "email"); err != nil {
			return nil, false, fmt.Errorf("%q: некорректный e-mail", q.Text)
		}
	}

	return text, true, nil
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "да", "д", "yes", "y":
		return true, true
	case "нет", "н", "no", "n":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

// collectAnswers builds the submission body. Unanswered optional questions
// are left out.
func collectAnswers(pages [][]*questionInput) (models.Answers, error) {
	answers := make(models.Answers)
	for _, page := range pages {
		for _, in := range page {
			v, ok, err := in.value()
			if err != nil {
				return nil, err
			}
			if !ok {
				if formshape.RequiredFromOptional(in.question.Optional) {
					return nil, fmt.Errorf("%q: обязательный вопрос", in.question.Text)
				}
				continue
			}
			answers[models.QuestionColumn(in.question.ID)] = v
		}
	}
	return answers, nil
}
