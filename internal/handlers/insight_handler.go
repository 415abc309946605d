package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"goldsite/internal/interfaces"
	"goldsite/internal/models"
)

type InsightHandler struct {
	repo      interfaces.InsightRepository
	validator *validator.Validate
}

func NewInsightHandler(repo interfaces.InsightRepository) *InsightHandler {
	return &InsightHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

func (h *InsightHandler) CreateInsight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	insight := &models.Insight{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Author:           req.Author,
		FeaturedImageURL: req.FeaturedImageURL,
		Status:           status,
	}
	if status == "published" {
		now := time.Now().UTC()
		insight.PublishedAt = &now
	}

	if err := h.repo.Create(r.Context(), insight); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to create insight")
		return
	}

	writeJSON(w, http.StatusCreated, insight)
}

// ListInsights serves the public site: published posts only.
func (h *InsightHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAllInsights serves the admin console: drafts included.
func (h *InsightHandler) ListAllInsights(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *InsightHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	insights, err := h.repo.List(r.Context(), publishedOnly)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list insights")
		return
	}

	if insights == nil {
		insights = []models.Insight{} // Return empty array instead of null
	}

	writeJSON(w, http.StatusOK, insights)
}

func (h *InsightHandler) GetInsightBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Slug is required")
		return
	}

	insight, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Insight not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get insight")
		return
	}

	// Drafts are not visible on the public site.
	if insight.Status != "published" {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Insight not found")
		return
	}

	writeJSON(w, http.StatusOK, insight)
}

func (h *InsightHandler) UpdateInsight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Insight ID is required")
		return
	}

	var req models.UpdateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Insight not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_failed", "Failed to update insight")
		return
	}

	insight, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get insight")
		return
	}

	writeJSON(w, http.StatusOK, insight)
}

func (h *InsightHandler) DeleteInsight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Insight ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Insight not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete insight")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
