package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) listAllowedUsers(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listAllowedUsers")
		return
	}

	ids, err := h.services.AccessService.ListAllowedUsers(r.Context(), userID(r), formID)
	if err != nil {
		writeError(w, r, err, "*Handler.listAllowedUsers")
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}

// addUsers accepts either a bare JSON array of user ids or
// {"userIds": [...]}.
func (h *Handler) addUsers(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.addUsers")
		return
	}

	ids, err := decodeUserIDs(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.addUsers")
		return
	}

	if err = h.services.AccessService.Share(r.Context(), userID(r), formID, ids...); err != nil {
		writeError(w, r, err, "*Handler.addUsers")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeUserIDs(w http.ResponseWriter, r *http.Request) ([]int64, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var ids []int64
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &ids)
	} else {
		var req models.ShareRequest
		err = json.Unmarshal(body, &req)
		ids = req.UserIDs
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return ids, nil
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.addUser")
		return
	}

	var ref models.UserRef
	if err = decodeJSON(w, r, &ref); err != nil {
		writeError(w, r, err, "*Handler.addUser")
		return
	}

	if err = h.services.AccessService.Share(r.Context(), userID(r), formID, ref.ID); err != nil {
		writeError(w, r, err, "*Handler.addUser")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	formID, err := formIDParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.removeUser")
		return
	}

	var ref models.UserRef
	if err = decodeJSON(w, r, &ref); err != nil {
		writeError(w, r, err, "*Handler.removeUser")
		return
	}

	if err = h.services.AccessService.Revoke(r.Context(), userID(r), formID, ref.ID); err != nil {
		writeError(w, r, err, "*Handler.removeUser")
		return
	}

	w.WriteHeader(http.StatusOK)
}
