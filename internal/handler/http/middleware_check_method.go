// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A path served under a different method answers 404 instead of chi's 405,
// so callers cannot probe which form and answer endpoints exist.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			logger.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method not served on path")
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
