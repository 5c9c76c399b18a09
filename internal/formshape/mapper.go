package formshape

import (
	"strconv"

	"github.com/MKhiriev/go-form-keeper/models"
)

var uiToServerDataType = map[models.UIDataType]models.DataType{
	models.UIShortText: models.DataShortText,
	models.UILongText:  models.DataLongText,
	models.UINumber:    models.DataNumber,
	models.UIBool:      models.DataBoolean,
}

var serverToUIDataType = map[models.DataType]models.UIDataType{
	models.DataShortText: models.UIShortText,
	models.DataEmail:     models.UIShortText,
	models.DataLongText:  models.UILongText,
	models.DataNumber:    models.UINumber,
	models.DataBoolean:   models.UIBool,
}

// ToServerShape serializes a UI form into the server payload. Pages and
// questions keep their array order; display ordering by created_at is
// applied only when rendering.
func ToServerShape(uiForm models.UIFormData, title, description string) models.ServerFormPayload {
	payload := models.ServerFormPayload{
		Title:       title,
		Description: description,
		Pages:       make([]models.Page, 0, len(uiForm.Pages)),
	}

	for pageIndex, page := range uiForm.Pages {
		questions := make([]models.Question, 0, len(page.Data))
		for _, object := range page.Data {
			questions = append(questions, toServerQuestion(object))
		}

		payload.Pages = append(payload.Pages, models.Page{
			PageIndex: pageIndex,
			Questions: questions,
		})
	}

	return payload
}

// ToUIShape converts a server form into UI shape. Ids of the produced
// FormObjects are synthesized from positions, see UIObjectID.
func ToUIShape(form models.Form) models.UIFormData {
	data := models.UIFormData{Pages: make([]models.PageData, 0, len(form.Pages))}

	for pageIndex, page := range form.Pages {
		objects := make([]models.FormObject, 0, len(page.Questions))
		for index, question := range page.Questions {
			objects = append(objects, toUIObject(question, UIObjectID(pageIndex, index)))
		}

		data.Pages = append(data.Pages, models.PageData{Data: objects})
	}

	return data
}

// UIObjectID builds the position-derived id "{pageIndex}-{indexWithinPage}".
// It is not durable: reordering pages or questions changes it.
func UIObjectID(pageIndex, index int) string {
	return strconv.Itoa(pageIndex) + "-" + strconv.Itoa(index)
}

func toServerQuestion(object models.FormObject) models.Question {
	questionType := models.QuestionText
	if object.Type == models.FormObjectMulti {
		questionType = models.QuestionRadio
	}

	dataType, ok := uiToServerDataType[object.DataType]
	if !ok {
		dataType = models.DataShortText
	}

	choices := make(models.Choices, 0, len(object.Choices))
	for _, choice := range object.Choices {
		choices = append(choices, choice.Title)
	}

	return models.Question{
		Text:      object.Que,
		Type:      questionType,
		DataType:  dataType,
		Optional:  OptionalFromRequired(object.Required),
		Choices:   choices,
		CreatedAt: object.CreatedAt,
	}
}

func toUIObject(question models.Question, id string) models.FormObject {
	objectType := models.FormObjectTextbox
	if question.Type.IsMulti() {
		objectType = models.FormObjectMulti
	}

	dataType, ok := serverToUIDataType[question.DataType]
	if !ok {
		dataType = models.UIShortText
	}

	choices := make([]models.Choice, 0, len(question.Choices))
	for index, title := range question.Choices {
		choices = append(choices, models.Choice{Index: index, Title: title})
	}

	return models.FormObject{
		ID:        id,
		Type:      objectType,
		Que:       question.Text,
		Choices:   choices,
		DataType:  dataType,
		Required:  RequiredFromOptional(question.Optional),
		CreatedAt: question.CreatedAt,
	}
}
