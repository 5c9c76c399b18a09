package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
)

// Field name constants for field-scoped form validation.
const (
	FieldTitle     = "title"
	FieldOwner     = "owner"
	FieldPages     = "pages"
	FieldQuestions = "questions"
)

// MaxQuestionsPerForm bounds the total number of questions in one form.
const MaxQuestionsPerForm = 500

var allowedDataTypes = []models.DataType{
	models.DataShortText,
	models.DataLongText,
	models.DataNumber,
	models.DataBoolean,
	models.DataEmail,
}

var allowedUIDataTypes = []models.UIDataType{
	models.UIShortText,
	models.UILongText,
	models.UINumber,
	models.UIBool,
}

// FormValidator checks the structure of forms in server and UI shape.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Form:
		return v.validateForm(ctx, value, fields...)
	case *models.Form:
		return v.validateForm(ctx, *value, fields...)

	case models.ServerFormPayload:
		return v.validateForm(ctx, value.Form(0), withoutOwner(fields)...)
	case *models.ServerFormPayload:
		return v.validateForm(ctx, value.Form(0), withoutOwner(fields)...)

	case models.UIFormData:
		return v.validateUIForm(ctx, value, fields...)
	case *models.UIFormData:
		return v.validateUIForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// withoutOwner drops the owner check for payloads, which have no owner yet.
func withoutOwner(fields []string) []string {
	if len(fields) == 0 {
		return []string{FieldTitle, FieldPages, FieldQuestions}
	}

	return slices.DeleteFunc(slices.Clone(fields), func(f string) bool { return f == FieldOwner })
}

func (v *FormValidator) validateForm(_ context.Context, form models.Form, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldOwner, FieldPages, FieldQuestions}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(form.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldOwner:
			if form.OwnerID <= 0 {
				return ErrInvalidOwner
			}
		case FieldPages:
			if err := validatePageIndexes(form.Pages); err != nil {
				return err
			}
		case FieldQuestions:
			if len(form.Questions()) > MaxQuestionsPerForm {
				return ErrTooManyQuestions
			}
			for _, page := range form.Pages {
				for i, question := range page.Questions {
					if err := validateQuestion(question); err != nil {
						return fmt.Errorf("page %d question %d: %w", page.PageIndex, i, err)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePageIndexes(pages []models.Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	seen := make(map[int]struct{}, len(pages))
	for _, page := range pages {
		if page.PageIndex < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidPageIndex, page.PageIndex)
		}
		if _, dup := seen[page.PageIndex]; dup {
			return fmt.Errorf("%w: duplicate %d", ErrInvalidPageIndex, page.PageIndex)
		}
		seen[page.PageIndex] = struct{}{}
	}

	return nil
}

func validateQuestion(question models.Question) error {
	if strings.TrimSpace(question.Text) == "" {
		return ErrEmptyQuestionText
	}
	if !slices.Contains(allowedDataTypes, question.DataType) {
		return fmt.Errorf("%w: %q", ErrInvalidDataType, question.DataType)
	}
	if question.CreatedAt < 0 {
		return ErrInvalidQuestionTime
	}
	if question.Type.IsMulti() {
		if len(question.Choices) == 0 {
			return ErrMissingChoices
		}
		if slices.ContainsFunc(question.Choices, func(c string) bool { return strings.TrimSpace(c) == "" }) {
			return ErrEmptyChoice
		}
	}

	return nil
}

func (v *FormValidator) validateUIForm(_ context.Context, form models.UIFormData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPages, FieldQuestions}
	}

	for _, f := range fields {
		switch f {
		case FieldPages:
			if len(form.Pages) == 0 {
				return ErrNoPages
			}
		case FieldQuestions:
			if form.QuestionCount() > MaxQuestionsPerForm {
				return ErrTooManyQuestions
			}
			for pageIndex, page := range form.Pages {
				for i, object := range page.Data {
					if err := validateFormObject(object); err != nil {
						return fmt.Errorf("page %d object %d: %w", pageIndex, i, err)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFormObject(object models.FormObject) error {
	if strings.TrimSpace(object.Que) == "" {
		return ErrEmptyQuestionText
	}
	if object.Type != models.FormObjectMulti && object.Type != models.FormObjectTextbox {
		return fmt.Errorf("%w: %q", ErrInvalidObjectType, object.Type)
	}
	if object.DataType != "" && !slices.Contains(allowedUIDataTypes, object.DataType) {
		return fmt.Errorf("%w: %q", ErrInvalidDataType, object.DataType)
	}
	if object.Type == models.FormObjectMulti {
		if len(object.Choices) == 0 {
			return ErrMissingChoices
		}
		for _, choice := range object.Choices {
			if strings.TrimSpace(choice.Title) == "" {
				return ErrEmptyChoice
			}
		}
	}

	return nil
}
