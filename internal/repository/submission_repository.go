package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"goldsite/internal/models"
)

type SubmissionRepository interface {
	CreateContact(ctx context.Context, sub *models.ContactSubmission) error
	ListContacts(ctx context.Context) ([]models.ContactSubmission, error)
	CreateNewsletter(ctx context.Context, sub *models.NewsletterSubscription) error
}

type submissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateContact(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, message, interest, crm_forwarded, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Message,
		sub.Interest,
		sub.CRMForwarded,
		sub.IPAddress,
		sub.UserAgent,
	).Scan(&sub.CreatedAt)
	if err != nil {
		log.Printf("Error creating contact submission: %v", err)
		return fmt.Errorf("failed to create contact submission: %w", err)
	}

	return nil
}

func (r *submissionRepository) ListContacts(ctx context.Context) ([]models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, message, interest, crm_forwarded, ip_address, user_agent, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing contact submissions: %v", err)
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.ContactSubmission
	for rows.Next() {
		var s models.ContactSubmission
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.Message,
			&s.Interest,
			&s.CRMForwarded,
			&s.IPAddress,
			&s.UserAgent,
			&s.CreatedAt,
		); err != nil {
			log.Printf("Error scanning contact submission: %v", err)
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, s)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating contact submissions: %v", err)
		return nil, fmt.Errorf("error iterating contact submissions: %w", err)
	}

	return subs, nil
}

// CreateNewsletter is idempotent: re-subscribing an existing address is
// not an error.
func (r *submissionRepository) CreateNewsletter(ctx context.Context, sub *models.NewsletterSubscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, sub.ID, sub.Email); err != nil {
		log.Printf("Error creating newsletter subscription: %v", err)
		return fmt.Errorf("failed to create newsletter subscription: %w", err)
	}

	return nil
}
