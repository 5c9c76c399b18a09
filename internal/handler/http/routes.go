package http

import (
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the form-builder REST API.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	return &Handler{services: services, logger: log.WithComponent("http")}
}

// Init builds the router. Auth, form and access endpoints live under /api;
// everything except signup, login and version requires a bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/google", h.loginWithGoogle)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/me", h.me)
		r.Get("/api/getallusersid", h.listUsers)

		r.Get("/api/forms", h.listOwnedForms)
		r.Get("/api/forms/templates", h.listTemplates)
		r.Get("/api/forms/active", h.listActiveForms)
		r.Get("/api/forms/sharedWithMe", h.listSharedForms)

		r.Post("/api/form", h.createForm)
		r.Route("/api/form/{formID}", func(r chi.Router) {
			r.Get("/", h.getForm)
			r.Put("/", h.updateForm)
			r.Put("/template", h.toggleTemplate)
			r.Put("/status", h.setStatus)
			r.Get("/fields", h.fields)

			r.Post("/submit", h.submit)
			r.Get("/results", h.results)
			r.Get("/results/export", h.exportResults)
			r.Post("/query", h.query)

			r.Get("/getallusersid", h.listAllowedUsers)
			r.Post("/addusers", h.addUsers)
			r.Post("/adduser", h.addUser)
			r.Post("/removeuser", h.removeUser)
		})

		r.Post("/api/ai/preview-form", h.previewAIForm)
		r.Post("/api/ai/generate-form", h.generateAIForm)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
