package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.appInfo)
		r.Get("/test", h.diagnostics)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// routes protected by an API key
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/me", h.me)
		r.Get("/projects", h.listProjects)
		r.Post("/projects", h.createProject)
		r.Patch("/projects/{id}", h.updateProject)
		r.Delete("/projects/{id}", h.deleteProject)
		r.Post("/api/v1/analyze", h.analyze)
	})

	return router
}
