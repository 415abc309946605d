package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"goldsite/internal/models"
	"goldsite/internal/repository"
	"goldsite/internal/services"
)

type ContactHandler struct {
	repo        repository.SubmissionRepository
	relay       services.LeadRelay
	mailer      services.EmailSender
	notifyEmail string
	validator   *validator.Validate
}

func NewContactHandler(db *sql.DB, relay services.LeadRelay, mailer services.EmailSender, notifyEmail string) *ContactHandler {
	return &ContactHandler{
		repo:        repository.NewSubmissionRepository(db),
		relay:       relay,
		mailer:      mailer,
		notifyEmail: notifyEmail,
		validator:   validator.New(),
	}
}

// SubmitContact stores the submission, then forwards it to the CRM and
// notifies staff. The relay and the notification are best-effort: a
// failure there is logged but the caller still gets a success as long
// as the row was written.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid contact details"})
		return
	}

	forwarded := false
	if h.relay != nil {
		if err := h.relay.Submit(r.Context(), services.LeadSubmission{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Message:  req.Message,
			Interest: req.Interest,
		}); err != nil {
			log.Printf("CRM relay error: %v", err)
		} else {
			forwarded = true
		}
	}

	ipAddress, userAgent := requestMeta(r)
	sub := &models.ContactSubmission{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		Interest:     req.Interest,
		CRMForwarded: forwarded,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	if err := h.repo.CreateContact(r.Context(), sub); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to store submission"})
		return
	}

	if h.mailer != nil && h.notifyEmail != "" {
		body := "New contact submission from " + req.Name + " <" + req.Email + ">:<br><br>" + req.Message
		if err := h.mailer.Send(h.notifyEmail, "New contact form submission", body); err != nil {
			log.Printf("Contact notification email error: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Thank you for getting in touch"})
}

// ListContacts serves the admin console.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.ListContacts(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list submissions")
		return
	}

	if subs == nil {
		subs = []models.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, subs)
}

func (h *ContactHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req models.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "A valid email is required"})
		return
	}

	sub := &models.NewsletterSubscription{
		ID:    uuid.NewString(),
		Email: req.Email,
	}

	// Duplicate subscriptions are a no-op, not an error.
	if err := h.repo.CreateNewsletter(r.Context(), sub); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to subscribe"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Subscribed"})
}
