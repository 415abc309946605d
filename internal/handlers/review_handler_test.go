package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"goldsite/internal/models"
	"goldsite/internal/repository"
)

func reviewCols() []string {
	return []string{"id", "customer_name", "address", "property_type", "review_text", "rating", "status", "created_at", "approved_at"}
}

func TestSubmitReviewStartsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(sqlmock.AnyArg(), "Jane Doe", "12 High St", "Office", "Great advice from start to finish.", 5, models.ReviewStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()))

	h := NewReviewHandler(repository.NewReviewRepository(db))

	payload := map[string]any{
		"customer_name": "Jane Doe",
		"address":       "12 High St",
		"property_type": "Office",
		"review_text":   "Great advice from start to finish.",
		"rating":        5,
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.SubmitReview(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var resp models.Review
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != models.ReviewStatusPending {
		t.Fatalf("expected pending status, got %q", resp.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSubmitReviewRejectsBadRating(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewReviewHandler(repository.NewReviewRepository(db))

	payload := map[string]any{
		"customer_name": "Jane Doe",
		"review_text":   "Great advice from start to finish.",
		"rating":        6,
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.SubmitReview(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestListReviewsInvalidStatusFilter(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewReviewHandler(repository.NewReviewRepository(db))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reviews?status=bogus", nil)
	w := httptest.NewRecorder()
	h.ListReviews(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestListApprovedReviewsEmptySliceNotNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, customer_name").WithArgs(models.ReviewStatusApproved).
		WillReturnRows(sqlmock.NewRows(reviewCols()))

	h := NewReviewHandler(repository.NewReviewRepository(db))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	w := httptest.NewRecorder()
	h.ListApprovedReviews(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body == "null\n" || body == "null" {
		t.Fatalf("expected empty array, got null")
	}
}

func TestApproveReviewStampsStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("UPDATE reviews").WithArgs(models.ReviewStatusApproved, "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, customer_name").WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(reviewCols()).
			AddRow("r1", "Jane Doe", "", "", "Great advice from start to finish.", 5, models.ReviewStatusApproved, now, now))

	h := NewReviewHandler(repository.NewReviewRepository(db))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "r1")
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/reviews/r1/approve", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp models.Review
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != models.ReviewStatusApproved {
		t.Fatalf("expected approved, got %q", resp.Status)
	}
	if resp.ApprovedAt == nil {
		t.Fatalf("approved_at should be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestApproveReviewNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reviews").WithArgs(models.ReviewStatusApproved, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := NewReviewHandler(repository.NewReviewRepository(db))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/reviews/missing/approve", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.ApproveReview(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}
