package models

const (
	DefaultAIFormType     = "general"
	DefaultAILanguage     = "en"
	DefaultAIMaxQuestions = 15
)

// AIFormRequest asks the generator for a form skeleton.
type AIFormRequest struct {
	Prompt       string `json:"prompt" validate:"required,max=4000"`
	FormType     string `json:"formType" validate:"omitempty,max=64"`
	Language     string `json:"language" validate:"omitempty,max=16"`
	MaxQuestions int    `json:"maxQuestions" validate:"omitempty,min=1,max=50"`
}

// WithDefaults fills unset optional fields.
func (r AIFormRequest) WithDefaults() AIFormRequest {
	if r.FormType == "" {
		r.FormType = DefaultAIFormType
	}
	if r.Language == "" {
		r.Language = DefaultAILanguage
	}
	if r.MaxQuestions == 0 {
		r.MaxQuestions = DefaultAIMaxQuestions
	}

	return r
}

// AIFormResponse is returned by the preview endpoint.
type AIFormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Form    *Form  `json:"form,omitempty"`
}
