package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"goldsite/internal/models"
)

func TestOneTimeCodeCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	code := &models.OneTimeCode{
		ID:        "c1",
		Email:     "admin@x.com",
		Code:      "123456",
		ExpiresAt: now.Add(5 * time.Minute),
		IPAddress: "127.0.0.1",
		UserAgent: "test-agent",
		CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO password_reset_otps").
		WithArgs("c1", "admin@x.com", "123456", code.ExpiresAt, "127.0.0.1", "test-agent", now).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewOneTimeCodeRepository(db)
	if err := repo.Create(context.Background(), code); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestFindEligibleNoMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, otp_code").WithArgs("admin@x.com", "123456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "otp_code", "expires_at", "used", "ip_address", "user_agent", "created_at"}))

	repo := NewOneTimeCodeRepository(db)
	if _, err := repo.FindEligible(context.Background(), "admin@x.com", "123456"); err != ErrCodeNotEligible {
		t.Fatalf("expected ErrCodeNotEligible, got %v", err)
	}
}

func TestFindEligibleReturnsLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, email, otp_code").WithArgs("admin@x.com", "654321").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "otp_code", "expires_at", "used", "ip_address", "user_agent", "created_at"}).
			AddRow("c2", "admin@x.com", "654321", now.Add(4*time.Minute), false, "127.0.0.1", "ua", now))

	repo := NewOneTimeCodeRepository(db)
	c, err := repo.FindEligible(context.Background(), "admin@x.com", "654321")
	if err != nil {
		t.Fatalf("FindEligible: %v", err)
	}
	if c.ID != "c2" || c.Code != "654321" {
		t.Fatalf("unexpected code row: %+v", c)
	}
	if c.Used {
		t.Fatalf("eligible code must be unused")
	}
}

func TestConsumeAlreadyUsed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE password_reset_otps SET used = TRUE WHERE id = \$1 AND used = FALSE`).
		WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewOneTimeCodeRepository(db)
	if err := repo.Consume(context.Background(), "c1"); err != ErrCodeNotEligible {
		t.Fatalf("expected ErrCodeNotEligible, got %v", err)
	}
}

func TestConsumeMarksUsed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE password_reset_otps SET used = TRUE WHERE id = \$1 AND used = FALSE`).
		WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOneTimeCodeRepository(db)
	if err := repo.Consume(context.Background(), "c1"); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
