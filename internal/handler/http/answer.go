package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	var answers models.Answers
	if err = decodeJSON(w, r, &answers); err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	submission, err := h.services.AnswerService.Submit(r.Context(), userID(r), formID, answers)
	if err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	utils.WriteJSON(w, submission, http.StatusCreated)
}

func (h *Handler) results(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.results")
		return
	}

	var query models.ResultsQuery
	if query.Rows, err = intQueryParam(r, "rows"); err != nil {
		writeError(w, r, err, "*Handler.results")
		return
	}
	if query.Cols, err = intQueryParam(r, "cols"); err != nil {
		writeError(w, r, err, "*Handler.results")
		return
	}

	rows, err := h.services.AnswerService.Results(r.Context(), userID(r), formID, query)
	if err != nil {
		writeError(w, r, err, "*Handler.results")
		return
	}
	if rows == nil {
		rows = []models.ResultRow{}
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

// exportResults buffers the workbook so that a failure midway still yields a
// proper error status.
func (h *Handler) exportResults(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.exportResults")
		return
	}

	var buf bytes.Buffer
	if err = h.services.AnswerService.ExportResults(r.Context(), userID(r), formID, &buf); err != nil {
		writeError(w, r, err, "*Handler.exportResults")
		return
	}

	utils.SetAttachment(w, fmt.Sprintf("form-%d-results.xlsx", formID), xlsxContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
