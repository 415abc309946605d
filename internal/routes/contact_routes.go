package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/middleware"
	"goldsite/internal/services"
)

func RegisterContactRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	var relay services.LeadRelay
	if cfg.LeadConnectorFormURL != "" {
		relay = services.NewLeadConnectorClient(cfg.LeadConnectorFormURL)
	}

	handler := handlers.NewContactHandler(db, relay, newMailer(cfg), cfg.ContactNotifyEmail)

	router.Post("/contact", handler.SubmitContact)
	router.Post("/newsletter", handler.SubscribeNewsletter)

	router.Route("/admin/contact-submissions", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/", handler.ListContacts)
	})
}
