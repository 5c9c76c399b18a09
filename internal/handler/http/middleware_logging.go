package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a request-scoped logger tagged with trace_id into the
// request context and echoes the id back in X-Trace-ID. Client ids that
// are not UUIDs are replaced.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := uuid.Parse(r.Header.Get(traceIDHeader))
		if err != nil {
			traceID = uuid.New()
		}

		reqLog := h.logger.With().Str("trace_id", traceID.String()).Logger()
		w.Header().Set(traceIDHeader, traceID.String())

		next.ServeHTTP(w, r.WithContext(reqLog.WithContext(r.Context())))
	})
}

// withLogging writes one access line per request. Server errors are logged
// at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Send()
	})
}
