package models

// FormObjectType is the UI widget tag of a form object.
type FormObjectType string

const (
	FormObjectMulti   FormObjectType = "multi"
	FormObjectTextbox FormObjectType = "textbox"
)

// UIDataType is the UI spelling of a question's value type.
type UIDataType string

const (
	UIShortText UIDataType = "shortText"
	UILongText  UIDataType = "longText"
	UINumber    UIDataType = "number"
	UIBool      UIDataType = "bool"
)

// Choice is a UI choice entry. Index is the position of the entry in its
// list and is recomputed whenever the list is rebuilt.
type Choice struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// FormObject is one question in UI shape.
//
// ID is position-derived ("{pageIndex}-{indexWithinPage}") when the object
// comes from the server, so it is invalidated by any reordering and must
// never be sent back as a server id.
type FormObject struct {
	ID       string         `json:"id"`
	Type     FormObjectType `json:"type"`
	Que      string         `json:"que"`
	Choices  []Choice       `json:"choices"`
	DataType UIDataType     `json:"dataType,omitempty"`

	// Required is the inverse of Question.Optional.
	Required bool `json:"required,omitempty"`

	CreatedAt int64 `json:"created_at"`
}

// PageData is one UI page.
type PageData struct {
	Data []FormObject `json:"data"`
}

// UIFormData is the UI representation of a form body. Title, description
// and id travel separately.
type UIFormData struct {
	Pages []PageData `json:"pages"`
}

// QuestionCount returns the number of form objects over all pages.
func (d UIFormData) QuestionCount() int {
	count := 0
	for _, page := range d.Pages {
		count += len(page.Data)
	}

	return count
}
