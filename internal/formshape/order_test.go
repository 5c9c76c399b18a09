package formshape

import (
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestSortByCreatedAt(t *testing.T) {
	questions := []models.Question{
		{Text: "c", CreatedAt: 30},
		{Text: "a", CreatedAt: 10},
		{Text: "b1", CreatedAt: 20},
		{Text: "b2", CreatedAt: 20},
	}

	sorted := SortByCreatedAt(questions)

	var texts []string
	for _, q := range sorted {
		texts = append(texts, q.Text)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, texts)
	assert.Equal(t, "c", questions[0].Text, "input is not modified")
}

func TestSortObjectsByCreatedAt(t *testing.T) {
	objects := []models.FormObject{{Que: "late", CreatedAt: 2}, {Que: "early", CreatedAt: 1}}

	sorted := SortObjectsByCreatedAt(objects)

	assert.Equal(t, "early", sorted[0].Que)
	assert.Equal(t, "late", objects[0].Que)
}

func TestDisplayOrder(t *testing.T) {
	form := sampleServerForm()

	ordered := DisplayOrder(form)

	assert.Equal(t, "Colour", ordered.Pages[0].Questions[0].Text)
	assert.Equal(t, "Name", ordered.Pages[0].Questions[1].Text)
	assert.Equal(t, "Name", form.Pages[0].Questions[0].Text, "input pages are not modified")
}
