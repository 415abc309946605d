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

type CaseStudyHandler struct {
	repo      interfaces.CaseStudyRepository
	validator *validator.Validate
}

func NewCaseStudyHandler(repo interfaces.CaseStudyRepository) *CaseStudyHandler {
	return &CaseStudyHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

func (h *CaseStudyHandler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCaseStudyRequest
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

	gallery := req.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}

	cs := &models.CaseStudy{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Slug:          req.Slug,
		ClientName:    req.ClientName,
		Location:      req.Location,
		Description:   req.Description,
		Challenge:     req.Challenge,
		Solution:      req.Solution,
		Results:       req.Results,
		ROIPercentage: req.ROIPercentage,
		ImageURL:      req.ImageURL,
		GalleryImages: gallery,
		Status:        status,
		Featured:      req.Featured,
	}
	if status == "published" {
		now := time.Now().UTC()
		cs.PublishedAt = &now
	}

	if err := h.repo.Create(r.Context(), cs); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to create case study")
		return
	}

	writeJSON(w, http.StatusCreated, cs)
}

func (h *CaseStudyHandler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	studies, err := h.repo.List(r.Context(), true, featuredOnly)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list case studies")
		return
	}

	if studies == nil {
		studies = []models.CaseStudy{}
	}

	writeJSON(w, http.StatusOK, studies)
}

func (h *CaseStudyHandler) ListAllCaseStudies(w http.ResponseWriter, r *http.Request) {
	studies, err := h.repo.List(r.Context(), false, false)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list case studies")
		return
	}

	if studies == nil {
		studies = []models.CaseStudy{}
	}

	writeJSON(w, http.StatusOK, studies)
}

func (h *CaseStudyHandler) GetCaseStudyBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Slug is required")
		return
	}

	cs, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Case study not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get case study")
		return
	}

	if cs.Status != "published" {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Case study not found")
		return
	}

	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseStudyHandler) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Case study ID is required")
		return
	}

	var req models.UpdateCaseStudyRequest
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
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Case study not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_failed", "Failed to update case study")
		return
	}

	cs, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get case study")
		return
	}

	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseStudyHandler) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Case study ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Case study not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete case study")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
