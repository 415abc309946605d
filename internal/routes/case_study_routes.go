package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/repository"
)

func RegisterCaseStudyRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	handler := handlers.NewCaseStudyHandler(repository.NewCaseStudyRepository(db))

	router.Route("/case-studies", func(r chi.Router) {
		r.Get("/", handler.ListCaseStudies)
		r.Get("/{slug}", handler.GetCaseStudyBySlug)
	})

	router.Route("/admin/case-studies", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/", handler.ListAllCaseStudies)
		r.Post("/", handler.CreateCaseStudy)
		r.Put("/{id}", handler.UpdateCaseStudy)
		r.Delete("/{id}", handler.DeleteCaseStudy)
	})
}
