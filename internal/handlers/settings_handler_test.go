package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"goldsite/internal/models"
	"goldsite/internal/repository"
)

func TestGetSettingsMergesDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	// Only one key is stored; the rest come from defaults.
	mock.ExpectQuery("SELECT key, value FROM site_settings").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value"}).
			AddRow(models.SettingHeroHeadline, "Custom Headline"),
	)

	h := NewSettingsHandler(repository.NewSiteSettingsRepository(db))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	w := httptest.NewRecorder()
	h.GetSettings(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Settings map[string]string `json:"settings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Settings) != len(models.SettingDefaults) {
		t.Fatalf("expected %d settings, got %d", len(models.SettingDefaults), len(resp.Settings))
	}
	if resp.Settings[models.SettingHeroHeadline] != "Custom Headline" {
		t.Fatalf("stored value not merged: %v", resp.Settings)
	}
	if resp.Settings[models.SettingValueProp1Title] != models.SettingDefaults[models.SettingValueProp1Title] {
		t.Fatalf("default value missing: %v", resp.Settings)
	}
}

func TestUpdateSettingsRejectsUnknownKeyBeforeWriting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewSettingsHandler(repository.NewSiteSettingsRepository(db))

	payload := map[string]any{"settings": map[string]string{
		models.SettingHeroHeadline: "New Headline",
		"not_a_real_key":           "value",
	}}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.UpdateSettings(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}

	// Nothing was written, not even the valid key.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateSettingsUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_settings").
		WithArgs(models.SettingHeroHeadline, "New Headline").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT key, value FROM site_settings").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value"}).
			AddRow(models.SettingHeroHeadline, "New Headline"),
	)

	h := NewSettingsHandler(repository.NewSiteSettingsRepository(db))

	payload := map[string]any{"settings": map[string]string{
		models.SettingHeroHeadline: "New Headline",
	}}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.UpdateSettings(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
