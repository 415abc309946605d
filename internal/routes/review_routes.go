package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/repository"
)

func RegisterReviewRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	handler := handlers.NewReviewHandler(repository.NewReviewRepository(db))

	router.Route("/reviews", func(r chi.Router) {
		r.Get("/", handler.ListApprovedReviews)
		r.Post("/", handler.SubmitReview)
	})

	router.Route("/admin/reviews", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/", handler.ListReviews)
		r.Post("/{id}/approve", handler.ApproveReview)
		r.Post("/{id}/reject", handler.RejectReview)
		r.Delete("/{id}", handler.DeleteReview)
	})
}
