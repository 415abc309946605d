package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
	"goldsite/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTExpiresInSeconds: 3600,
		AdminSetupKey:       "setup-key",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(adminCols).WithArgs("admin@x.com").WillReturnRows(
		sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow("a1", "admin@x.com", "Admin", string(hash), time.Now().UTC()),
	)

	h := NewAuthHandler(db, testConfig())
	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]any{
		"email":    "admin@x.com",
		"password": "correct-horse",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] == "" || resp["access_token"] == nil {
		t.Fatalf("missing access_token: %v", resp)
	}
	if resp["email"] != "admin@x.com" {
		t.Fatalf("unexpected email: %v", resp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	mock.ExpectQuery(adminCols).WithArgs("admin@x.com").WillReturnRows(
		sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
			AddRow("a1", "admin@x.com", "Admin", string(hash), time.Now().UTC()),
	)

	h := NewAuthHandler(db, testConfig())
	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]any{
		"email":    "admin@x.com",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(adminCols).WithArgs("nobody@x.com").WillReturnRows(
		sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}),
	)

	h := NewAuthHandler(db, testConfig())
	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]any{
		"email":    "nobody@x.com",
		"password": "whatever",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSignupRequiresSetupKey(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewAuthHandler(db, testConfig())
	w := postJSON(t, h.Signup, "/api/v1/auth/signup", map[string]any{
		"email":     "new@x.com",
		"name":      "New Admin",
		"password":  "longenough",
		"setup_key": "wrong-key",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSignupDisabledWithoutSetupKey(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := testConfig()
	cfg.AdminSetupKey = ""

	h := NewAuthHandler(db, cfg)
	w := postJSON(t, h.Signup, "/api/v1/auth/signup", map[string]any{
		"email":     "new@x.com",
		"name":      "New Admin",
		"password":  "longenough",
		"setup_key": "",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSignupSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO admin_users").WillReturnRows(
		sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()),
	)

	h := NewAuthHandler(db, testConfig())
	w := postJSON(t, h.Signup, "/api/v1/auth/signup", map[string]any{
		"email":     "new@x.com",
		"name":      "New Admin",
		"password":  "longenough",
		"setup_key": "setup-key",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
