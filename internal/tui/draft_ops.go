package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
)

var uiDataTypes = []models.UIDataType{models.UIShortText, models.UILongText, models.UINumber, models.UIBool}

// newFormObject builds a freshly added question. A non-empty choice list
// makes it a multi question.
func newFormObject(id, question, choices string, dataType models.UIDataType, required bool, createdAt int64) models.FormObject {
	object := models.FormObject{
		ID:        id,
		Type:      models.FormObjectTextbox,
		Que:       strings.TrimSpace(question),
		Choices:   []models.Choice{},
		DataType:  dataType,
		Required:  required,
		CreatedAt: createdAt,
	}

	for _, title := range strings.Split(choices, ";") {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		object.Choices = append(object.Choices, models.Choice{Index: len(object.Choices), Title: title})
	}
	if len(object.Choices) > 0 {
		object.Type = models.FormObjectMulti
		object.DataType = models.UIShortText
	}

	return object
}

// withObject returns a copy of data with object appended to page.
func withObject(data models.UIFormData, page int, object models.FormObject) models.UIFormData {
	pages := slices.Clone(data.Pages)
	pages[page] = models.PageData{Data: append(slices.Clone(pages[page].Data), object)}
	return models.UIFormData{Pages: pages}
}

// withoutObject returns a copy of data without the object with the given id
// on page.
func withoutObject(data models.UIFormData, page int, id string) models.UIFormData {
	pages := slices.Clone(data.Pages)
	kept := make([]models.FormObject, 0, len(pages[page].Data))
	for _, object := range pages[page].Data {
		if object.ID != id {
			kept = append(kept, object)
		}
	}
	pages[page] = models.PageData{Data: kept}
	return models.UIFormData{Pages: pages}
}

// withPage returns a copy of data with an empty page appended.
func withPage(data models.UIFormData) models.UIFormData {
	pages := append(slices.Clone(data.Pages), models.PageData{Data: []models.FormObject{}})
	return models.UIFormData{Pages: pages}
}

// withoutEmptyPages drops pages without questions, keeping at least one.
func withoutEmptyPages(data models.UIFormData) models.UIFormData {
	pages := make([]models.PageData, 0, len(data.Pages))
	for _, page := range data.Pages {
		if len(page.Data) > 0 {
			pages = append(pages, page)
		}
	}
	if len(pages) == 0 {
		pages = append(pages, models.PageData{Data: []models.FormObject{}})
	}
	return models.UIFormData{Pages: pages}
}
