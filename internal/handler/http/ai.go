package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

const msgFormGenerated = "form generated"

func (h *Handler) previewAIForm(w http.ResponseWriter, r *http.Request) {
	var req models.AIFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.previewAIForm")
		return
	}

	form, err := h.services.AIService.PreviewForm(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.previewAIForm")
		return
	}

	utils.WriteJSON(w, models.AIFormResponse{Success: true, Message: msgFormGenerated, Form: &form}, http.StatusOK)
}

func (h *Handler) generateAIForm(w http.ResponseWriter, r *http.Request) {
	var req models.AIFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateAIForm")
		return
	}

	form, err := h.services.AIService.GenerateForm(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generateAIForm")
		return
	}

	utils.WriteJSON(w, form, http.StatusCreated)
}
