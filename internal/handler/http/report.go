package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.query")
		return
	}

	var req models.ReportRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.query")
		return
	}

	result, err := h.services.ReportService.Query(r.Context(), userID(r), formID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.query")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
