package routes

import (
	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
)

func RegisterUploadRoutes(router chi.Router, cfg *config.Config, s3Config *config.S3Config) {
	handler := handlers.NewUploadHandler(s3Config)

	router.Route("/admin/uploads", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/", handler.Upload)
	})
}
