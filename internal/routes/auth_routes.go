package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"goldsite/internal/config"
	"goldsite/internal/handlers"
	"goldsite/internal/services"
)

func newMailer(cfg *config.Config) services.EmailSender {
	if cfg.ResendAPIKey != "" {
		return services.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	}
	return &services.SMTPSender{
		Host:   cfg.SMTPHost,
		Port:   cfg.SMTPPort,
		User:   cfg.SMTPUser,
		Pass:   cfg.SMTPPassword,
		From:   cfg.EmailFrom,
		UseTLS: cfg.SMTPUseTLS,
	}
}

func RegisterAuthRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	resetHandler := handlers.NewPasswordResetHandler(db, newMailer(cfg))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/password-reset", resetHandler.Handle)
	})
}
