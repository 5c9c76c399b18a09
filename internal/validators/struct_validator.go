package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates request DTOs by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	return &StructValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs the tag rules of obj. When fields are given only those
// struct fields (Go names) are checked. Rule violations are reported as
// ErrInvalidInput naming the failing fields.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		failed := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			failed = append(failed, fmt.Sprintf("%s(%s)", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(failed, ", "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
