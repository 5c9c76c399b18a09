package tui

import (
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormObject(t *testing.T) {
	textbox := newFormObject("id-1", " Age ", "", models.UINumber, true, 100)
	assert.Equal(t, models.FormObject{
		ID:        "id-1",
		Type:      models.FormObjectTextbox,
		Que:       "Age",
		Choices:   []models.Choice{},
		DataType:  models.UINumber,
		Required:  true,
		CreatedAt: 100,
	}, textbox)

	multi := newFormObject("id-2", "Color", "red; ;green ;", models.UINumber, false, 200)
	assert.Equal(t, models.FormObjectMulti, multi.Type)
	assert.Equal(t, models.UIShortText, multi.DataType)
	assert.Equal(t, []models.Choice{{Index: 0, Title: "red"}, {Index: 1, Title: "green"}}, multi.Choices)
}

func TestDraftOps_DoNotMutateInput(t *testing.T) {
	original := models.UIFormData{Pages: []models.PageData{
		{Data: []models.FormObject{{ID: "a"}, {ID: "b"}}},
	}}

	added := withObject(original, 0, models.FormObject{ID: "c"})
	removed := withoutObject(original, 0, "a")
	paged := withPage(original)

	assert.Len(t, original.Pages, 1)
	assert.Len(t, original.Pages[0].Data, 2)

	assert.Equal(t, 3, added.QuestionCount())
	require.Len(t, removed.Pages[0].Data, 1)
	assert.Equal(t, "b", removed.Pages[0].Data[0].ID)
	assert.Len(t, paged.Pages, 2)
}

func TestWithoutEmptyPages(t *testing.T) {
	data := models.UIFormData{Pages: []models.PageData{
		{Data: []models.FormObject{}},
		{Data: []models.FormObject{{ID: "a"}}},
		{Data: nil},
	}}

	got := withoutEmptyPages(data)
	require.Len(t, got.Pages, 1)
	assert.Equal(t, "a", got.Pages[0].Data[0].ID)

	empty := withoutEmptyPages(models.UIFormData{})
	assert.Len(t, empty.Pages, 1)
}
