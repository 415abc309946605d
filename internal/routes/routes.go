// internal/routes/routes.go
package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"goldsite/internal/config"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The website frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "goldsite API"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"status": "ok"}
		dbStatus := map[string]any{"status": "ok"}
		status := http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			dbStatus["status"] = "error"
			dbStatus["error"] = err.Error()
			resp["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}
		resp["db"] = dbStatus

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, db, cfg)
		RegisterInsightRoutes(r, db, cfg)
		RegisterCaseStudyRoutes(r, db, cfg)
		RegisterResourceRoutes(r, db, cfg)
		RegisterReviewRoutes(r, db, cfg)
		RegisterSettingsRoutes(r, db, cfg)
		RegisterContactRoutes(r, db, cfg)
		if s3Config != nil && s3Config.Client != nil {
			RegisterUploadRoutes(r, cfg, s3Config)
		}
	})

	return r
}
