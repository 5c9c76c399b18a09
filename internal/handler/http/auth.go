package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.signUp")
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.signUp")
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) loginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.loginWithGoogle")
		return
	}

	user, err := h.services.AuthService.LoginWithGoogle(r.Context(), req)
	if errors.Is(err, adapter.ErrBadGateway) {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.loginWithGoogle").Msg("identity provider failed")
		http.Error(w, app.MsgLoginFailed, http.StatusBadGateway)
		return
	}
	if err != nil {
		writeError(w, r, err, "*Handler.loginWithGoogle")
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

// respondWithToken issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, ExpiresAt: token.ExpiresAt}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "*Handler.me")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
