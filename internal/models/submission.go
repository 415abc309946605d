package models

import "time"

type ContactSubmission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	Interest     string    `json:"interest"`
	CRMForwarded bool      `json:"crm_forwarded"`
	IPAddress    string    `json:"-"`
	UserAgent    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message" validate:"required,min=5"`
	Interest string `json:"interest"`
}

type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
