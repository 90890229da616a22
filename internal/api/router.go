// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cardwallet/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(cardHandler *handler.CardHandler, dashboardHandler *handler.DashboardHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/dashboard", dashboardHandler.GetDashboard)

	// Card management routes
	r.Route("/cards", func(r chi.Router) {
		r.Get("/", cardHandler.ListCards)
		r.Post("/", cardHandler.AddCard)
		r.Get("/stats", cardHandler.GetStats)
		r.Route("/{cardID}", func(r chi.Router) {
			r.Get("/", cardHandler.GetCard)
			r.Delete("/", cardHandler.DeleteCard)
			r.Post("/default", cardHandler.SetDefaultCard)
			r.Post("/active", cardHandler.SetCardActive)
			r.Post("/expand", cardHandler.ToggleExpanded)
			r.Post("/select", cardHandler.SelectCard)
		})
	})

	logger.Debug("Routes registered")
	return r
}
