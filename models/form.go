package models

import "time"

// QuestionType is the server-side widget tag of a question. Values outside
// the declared constants are tolerated and treated as free text.
type QuestionType string

const (
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionEmail    QuestionType = "email"
	QuestionTel      QuestionType = "tel"
)

// IsMulti reports whether answers are picked from a choice list.
func (t QuestionType) IsMulti() bool {
	return t == QuestionRadio || t == QuestionCheckbox
}

// DataType is the canonical value type collected by a question.
type DataType string

const (
	DataShortText DataType = "SHORT_TEXT"
	DataLongText  DataType = "LONG_TEXT"
	DataNumber    DataType = "NUMBER"
	DataBoolean   DataType = "BOOLEAN"
	DataEmail     DataType = "EMAIL"
)

// Question is one field of a page in server shape.
type Question struct {
	ID       int64        `json:"id,omitempty"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	DataType DataType     `json:"dataType"`

	// Optional is the authoritative "not required" flag.
	Optional bool `json:"optional"`

	Choices Choices `json:"choices"`

	// CreatedAt is an opaque sort key in epoch milliseconds. Questions are
	// displayed in ascending CreatedAt order.
	CreatedAt int64 `json:"created_at"`
}

// Page is an ordered group of questions identified by its position.
type Page struct {
	ID        int64      `json:"id,omitempty"`
	PageIndex int        `json:"pageIndex"`
	Questions []Question `json:"questions"`
}

// Form is a named, owned, multi-page questionnaire in server shape.
type Form struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner"`
	Pages       []Page `json:"pages"`

	IsTemplate bool `json:"isTemplate"`
	IsActive   bool `json:"isActive"`
	IsExpired  bool `json:"isExpired"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Questions returns every question of the form across all pages in page
// order.
func (f Form) Questions() []Question {
	var questions []Question
	for _, page := range f.Pages {
		questions = append(questions, page.Questions...)
	}

	return questions
}

// QuestionByID looks a question up by its server id.
func (f Form) QuestionByID(id int64) (Question, bool) {
	for _, page := range f.Pages {
		for _, question := range page.Questions {
			if question.ID == id {
				return question, true
			}
		}
	}

	return Question{}, false
}

// ServerFormPayload is the body sent to the server when a form is created or
// updated from a UI-shape draft.
type ServerFormPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Pages       []Page `json:"pages"`
}

// Form converts the payload into a form owned by ownerID.
func (p ServerFormPayload) Form(ownerID int64) Form {
	return Form{
		Title:       p.Title,
		Description: p.Description,
		OwnerID:     ownerID,
		Pages:       p.Pages,
	}
}

// FormStatus is the change requested by PUT /api/form/{id}/status.
// Nil fields are left untouched.
type FormStatus struct {
	IsActive  *bool
	IsExpired *bool
}

// FormFilter selects forms for the listing endpoints. Zero fields do not
// filter.
type FormFilter struct {
	OwnerID    int64
	SharedWith int64

	OnlyTemplates bool

	// OnlyActive keeps forms that are active and not expired.
	OnlyActive bool
}
