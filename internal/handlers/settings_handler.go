package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"goldsite/internal/models"
	"goldsite/internal/repository"
)

type SettingsHandler struct {
	repo      repository.SiteSettingsRepository
	validator *validator.Validate
}

func NewSettingsHandler(repo repository.SiteSettingsRepository) *SettingsHandler {
	return &SettingsHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// GetSettings returns every known setting with stored values merged over
// defaults, so the site always has a complete map to render from.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

// UpdateSettings upserts the supplied keys. Keys outside the enumerated
// set are rejected before anything is written.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	for key := range req.Settings {
		if !models.KnownSettingKey(key) {
			writeJSONErrorResponse(w, http.StatusBadRequest, "unknown_key", "Unknown setting key: "+key)
			return
		}
	}

	for key, value := range req.Settings {
		if err := h.repo.Upsert(r.Context(), key, value); err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "update_failed", "Failed to update settings")
			return
		}
	}

	settings, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}
