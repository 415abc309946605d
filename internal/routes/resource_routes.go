package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/repository"
)

func RegisterResourceRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	handler := handlers.NewResourceHandler(repository.NewResourceRepository(db))

	router.Get("/resources", handler.ListResources)

	router.Route("/admin/resources", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/", handler.ListAllResources)
		r.Post("/", handler.CreateResource)
		r.Put("/{id}", handler.UpdateResource)
		r.Delete("/{id}", handler.DeleteResource)
	})
}
