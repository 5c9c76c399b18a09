package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/rs/zerolog"
)

var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// auth rejects requests without a valid bearer token with 401 and the
// token message of package app. On success the user id is stored in the
// request context under [utils.UserIDCtxKey] and added to the request
// logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = l.WithContext(utils.WithUserID(ctx, token.UserID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
