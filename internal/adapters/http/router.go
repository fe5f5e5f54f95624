// Package http provides the inbound HTTP adapter including routing and
// server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskvault/taskvault/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Global middleware is applied in the order given; authMW guards only the
// /api/v1 subtree, so health probes stay unauthenticated.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	authMW func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix, no auth).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes, all behind bearer-token auth.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMW)

		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	return r
}
