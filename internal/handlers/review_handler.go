package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"goldsite/internal/models"
	"goldsite/internal/repository"
)

type ReviewHandler struct {
	repo      repository.ReviewRepository
	validator *validator.Validate
}

func NewReviewHandler(repo repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// SubmitReview takes a public review submission. New reviews always
// start out pending; only an admin can approve them onto the site.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	review := &models.Review{
		ID:           uuid.NewString(),
		CustomerName: req.CustomerName,
		Address:      req.Address,
		PropertyType: req.PropertyType,
		ReviewText:   req.ReviewText,
		Rating:       req.Rating,
		Status:       models.ReviewStatusPending,
	}

	if err := h.repo.Create(r.Context(), review); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to submit review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// ListApprovedReviews serves the public reviews carousel.
func (h *ReviewHandler) ListApprovedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.List(r.Context(), models.ReviewStatusApproved)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list reviews")
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}

// ListReviews serves the admin console with an optional ?status= filter.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", models.ReviewStatusPending, models.ReviewStatusApproved, models.ReviewStatusRejected:
	default:
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid status filter")
		return
	}

	reviews, err := h.repo.List(r.Context(), status)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list reviews")
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ReviewStatusApproved)
}

func (h *ReviewHandler) RejectReview(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ReviewStatusRejected)
}

func (h *ReviewHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Review ID is required")
		return
	}

	if err := h.repo.SetStatus(r.Context(), id, status); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Review not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_failed", "Failed to update review")
		return
	}

	review, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get review")
		return
	}

	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Review ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Review not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
