package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tohuynh.dev/internal/app"
	"tohuynh.dev/internal/middleware"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(a *app.App) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Recovery(a.Logger))
	r.Use(middleware.Logger(a.Logger))

	// Initialize handlers
	pageHandler := NewPageHandler(a)
	projectHandler := NewProjectHandler(a.Projects, a.Logger)
	manifestHandler := NewManifestHandler(a.Store, a.Logger)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects", pageHandler.Projects)
	r.NotFound(pageHandler.NotFound)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, a.Logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(a.Config.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Get("/site.webmanifest", manifestHandler.Manifest)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
