package repository

import (
	"context"
	"database/sql"
	"fmt"

	"goldsite/internal/models"
)

// ErrCodeNotEligible is returned when no unused, unexpired code matches.
// Callers surface it as a single generic invalid-or-expired error so the
// response never reveals which condition failed.
var ErrCodeNotEligible = fmt.Errorf("one-time code not found or not eligible")

type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *models.OneTimeCode) error
	FindEligible(ctx context.Context, email string, code string) (*models.OneTimeCode, error)
	Consume(ctx context.Context, id string) error
}

type oneTimeCodeRepository struct {
	db *sql.DB
}

func NewOneTimeCodeRepository(db *sql.DB) OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

func (r *oneTimeCodeRepository) Create(ctx context.Context, code *models.OneTimeCode) error {
	query := `
		INSERT INTO password_reset_otps (id, email, otp_code, expires_at, used, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, code.ID, code.Email, code.Code, code.ExpiresAt, code.IPAddress, code.UserAgent, code.CreatedAt).Scan(&code.CreatedAt)
	return err
}

// FindEligible selects the most recently created unused, unexpired code
// matching both email and code. Read-only; verification must not mutate
// anything.
func (r *oneTimeCodeRepository) FindEligible(ctx context.Context, email string, code string) (*models.OneTimeCode, error) {
	query := `
		SELECT id, email, otp_code, expires_at, used, ip_address, user_agent, created_at
		FROM password_reset_otps
		WHERE email = $1
		AND otp_code = $2
		AND used = FALSE
		AND expires_at >= (NOW() AT TIME ZONE 'UTC')
		ORDER BY created_at DESC
		LIMIT 1
	`

	var c models.OneTimeCode
	err := r.db.QueryRowContext(ctx, query, email, code).Scan(
		&c.ID,
		&c.Email,
		&c.Code,
		&c.ExpiresAt,
		&c.Used,
		&c.IPAddress,
		&c.UserAgent,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCodeNotEligible
		}
		return nil, err
	}
	return &c, nil
}

// Consume marks the code used with a conditional update so two racing
// resets cannot both win; zero rows affected means someone else consumed
// it first (or it was never eligible).
func (r *oneTimeCodeRepository) Consume(ctx context.Context, id string) error {
	query := `UPDATE password_reset_otps SET used = TRUE WHERE id = $1 AND used = FALSE`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCodeNotEligible
	}
	return nil
}
