package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	var payload models.ServerFormPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err, "*Handler.createForm")
		return
	}

	form, err := h.services.FormService.CreateForm(r.Context(), userID(r), payload)
	if err != nil {
		writeError(w, r, err, "*Handler.createForm")
		return
	}

	utils.WriteJSON(w, form, http.StatusCreated)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateForm")
		return
	}

	var payload models.ServerFormPayload
	if err = decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err, "*Handler.updateForm")
		return
	}

	form, err := h.services.FormService.UpdateForm(r.Context(), userID(r), formID, payload)
	if err != nil {
		writeError(w, r, err, "*Handler.updateForm")
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getForm")
		return
	}

	form, err := h.services.FormService.GetForm(r.Context(), userID(r), formID)
	if err != nil {
		writeError(w, r, err, "*Handler.getForm")
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) listOwnedForms(w http.ResponseWriter, r *http.Request) {
	h.listForms(w, r, models.FormFilter{OwnerID: userID(r)})
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	h.listForms(w, r, models.FormFilter{OwnerID: userID(r), OnlyTemplates: true})
}

func (h *Handler) listActiveForms(w http.ResponseWriter, r *http.Request) {
	h.listForms(w, r, models.FormFilter{OwnerID: userID(r), OnlyActive: true})
}

func (h *Handler) listSharedForms(w http.ResponseWriter, r *http.Request) {
	h.listForms(w, r, models.FormFilter{SharedWith: userID(r)})
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request, filter models.FormFilter) {
	forms, err := h.services.FormService.ListForms(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listForms")
		return
	}
	if forms == nil {
		forms = []models.Form{}
	}

	utils.WriteJSON(w, forms, http.StatusOK)
}

type templateResponse struct {
	IsTemplate bool `json:"isTemplate"`
}

func (h *Handler) toggleTemplate(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.toggleTemplate")
		return
	}

	isTemplate, err := h.services.FormService.ToggleTemplate(r.Context(), userID(r), formID)
	if err != nil {
		writeError(w, r, err, "*Handler.toggleTemplate")
		return
	}

	utils.WriteJSON(w, templateResponse{IsTemplate: isTemplate}, http.StatusOK)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.setStatus")
		return
	}

	var status models.FormStatus
	if status.IsActive, err = boolQueryParam(r, "active"); err != nil {
		writeError(w, r, err, "*Handler.setStatus")
		return
	}
	if status.IsExpired, err = boolQueryParam(r, "expired"); err != nil {
		writeError(w, r, err, "*Handler.setStatus")
		return
	}

	form, err := h.services.FormService.SetStatus(r.Context(), userID(r), formID, status)
	if err != nil {
		writeError(w, r, err, "*Handler.setStatus")
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) fields(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.fields")
		return
	}

	fields, err := h.services.FormService.Fields(r.Context(), userID(r), formID)
	if err != nil {
		writeError(w, r, err, "*Handler.fields")
		return
	}

	utils.WriteJSON(w, fields, http.StatusOK)
}
