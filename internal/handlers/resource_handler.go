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

type ResourceHandler struct {
	repo      repository.ResourceRepository
	validator *validator.Validate
}

func NewResourceHandler(repo repository.ResourceRepository) *ResourceHandler {
	return &ResourceHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req models.CreateResourceRequest
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

	resource := &models.Resource{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		FileURL:      req.FileURL,
		Category:     req.Category,
		Status:       status,
	}

	if err := h.repo.Create(r.Context(), resource); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to create resource")
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *ResourceHandler) ListAllResources(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *ResourceHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	resources, err := h.repo.List(r.Context(), publishedOnly)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list resources")
		return
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	writeJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Resource ID is required")
		return
	}

	var req models.UpdateResourceRequest
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
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Resource not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "update_failed", "Failed to update resource")
		return
	}

	resource, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_failed", "Failed to get resource")
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Resource ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Resource not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete resource")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
