package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/repository"
)

func RegisterInsightRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	handler := handlers.NewInsightHandler(repository.NewInsightRepository(db))

	router.Route("/insights", func(r chi.Router) {
		r.Get("/", handler.ListInsights)
		r.Get("/{slug}", handler.GetInsightBySlug)
	})

	router.Route("/admin/insights", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/", handler.ListAllInsights)
		r.Post("/", handler.CreateInsight)
		r.Put("/{id}", handler.UpdateInsight)
		r.Delete("/{id}", handler.DeleteInsight)
	})
}
