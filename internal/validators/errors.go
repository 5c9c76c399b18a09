package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation reported by the struct
	// validator.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmptyTitle          = errors.New("form title is required")
	ErrNoPages             = errors.New("form must have at least one page")
	ErrInvalidPageIndex    = errors.New("invalid page index")
	ErrEmptyQuestionText   = errors.New("question text is required")
	ErrMissingChoices      = errors.New("choice question needs at least one choice")
	ErrEmptyChoice         = errors.New("choice title is required")
	ErrInvalidDataType     = errors.New("invalid data type")
	ErrInvalidObjectType   = errors.New("invalid form object type")
	ErrInvalidOwner        = errors.New("invalid form owner")
	ErrTooManyQuestions    = errors.New("too many questions")
	ErrInvalidQuestionTime = errors.New("invalid question created_at")
)
