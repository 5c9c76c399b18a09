package formshape

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-form-keeper/models"
)

// SortByCreatedAt returns a copy of questions in display order: ascending
// created_at, ties kept in array order.
func SortByCreatedAt(questions []models.Question) []models.Question {
	sorted := slices.Clone(questions)
	slices.SortStableFunc(sorted, func(a, b models.Question) int {
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	})

	return sorted
}

// SortObjectsByCreatedAt is SortByCreatedAt for UI form objects.
func SortObjectsByCreatedAt(objects []models.FormObject) []models.FormObject {
	sorted := slices.Clone(objects)
	slices.SortStableFunc(sorted, func(a, b models.FormObject) int {
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	})

	return sorted
}

// DisplayOrder returns a copy of form with every page's questions sorted for
// rendering.
func DisplayOrder(form models.Form) models.Form {
	pages := make([]models.Page, len(form.Pages))
	for i, page := range form.Pages {
		page.Questions = SortByCreatedAt(page.Questions)
		pages[i] = page
	}
	form.Pages = pages

	return form
}
