package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/repository"
)

func RegisterSettingsRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	handler := handlers.NewSettingsHandler(repository.NewSiteSettingsRepository(db))

	router.Get("/settings", handler.GetSettings)

	router.Route("/admin/settings", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Put("/", handler.UpdateSettings)
	})
}
