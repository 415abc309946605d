package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"goldsite/internal/services"
)

type stubRelay struct {
	err   error
	leads []services.LeadSubmission
}

func (s *stubRelay) Submit(ctx context.Context, lead services.LeadSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, lead)
	return nil
}

func postContact(t *testing.T, h *ContactHandler, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.SubmitContact(w, req)
	return w
}

func TestSubmitContactStoresAndForwards(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contact_submissions").WillReturnRows(
		sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()),
	)

	relay := &stubRelay{}
	mailer := &recordingMailer{}
	h := NewContactHandler(db, relay, mailer, "staff@x.com")

	w := postContact(t, h, map[string]any{
		"name":     "Jane Doe",
		"email":    "jane@x.com",
		"phone":    "555-0100",
		"message":  "I would like a valuation.",
		"interest": "Selling",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if len(relay.leads) != 1 || relay.leads[0].Interest != "Selling" {
		t.Fatalf("lead not forwarded: %+v", relay.leads)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].to != "staff@x.com" {
		t.Fatalf("staff notification missing: %+v", mailer.sent)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSubmitContactRelayFailureStillSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contact_submissions").WillReturnRows(
		sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()),
	)

	relay := &stubRelay{err: errors.New("crm down")}
	h := NewContactHandler(db, relay, &recordingMailer{}, "")

	w := postContact(t, h, map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "I would like a valuation.",
	})

	// The row is the source of truth; CRM forwarding is best-effort.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSubmitContactStoreFailureFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contact_submissions").WillReturnError(errors.New("db down"))

	h := NewContactHandler(db, &stubRelay{}, &recordingMailer{}, "staff@x.com")

	w := postContact(t, h, map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "I would like a valuation.",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSubmitContactMissingFields(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewContactHandler(db, &stubRelay{}, &recordingMailer{}, "staff@x.com")

	w := postContact(t, h, map[string]any{"name": "Jane Doe", "email": "jane@x.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Missing required fields" {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

func TestSubscribeNewsletterIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	// ON CONFLICT DO NOTHING reports zero rows on a duplicate.
	mock.ExpectExec("INSERT INTO newsletter_subscriptions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := NewContactHandler(db, nil, nil, "")

	b, _ := json.Marshal(map[string]any{"email": "jane@x.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/newsletter", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.SubscribeNewsletter(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
