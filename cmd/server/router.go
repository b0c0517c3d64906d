package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jortega-dev/taskboard-api/internal/api"
	apiMiddleware "github.com/jortega-dev/taskboard-api/internal/api/middleware"
	"github.com/jortega-dev/taskboard-api/internal/ratelimit"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The rate limiter sits in front of authentication so even
// unauthenticated floods are counted.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	rateLimit := apiMiddleware.NewRateLimitMiddleware(
		app.rateLimiter,
		ratelimit.DefaultKeyFunc,
		app.config.RateLimit.ExemptPaths,
	)
	r.Use(rateLimit.Limit)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	taskHandler := api.NewTaskHandler(app.taskStore)
	messageHandler := api.NewMessageHandler(app.messageStore)
	inspectionHandler := api.NewInspectionHandler(app.inspectionStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Post("/tasks/{id}/restore", taskHandler.Restore)

			r.Post("/messages", messageHandler.Create)
			r.Get("/messages/{sessionID}", messageHandler.ListBySession)

			r.Post("/inspections", inspectionHandler.Create)
			r.Get("/inspections", inspectionHandler.List)
			r.Get("/inspections/{id}", inspectionHandler.Get)
		})
	})

	// Health check endpoint, exempt from rate limiting by configuration
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
