package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"goldsite/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context, status string) ([]models.Review, error)
	SetStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, customer_name, address, property_type, review_text, rating, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		review.ID,
		review.CustomerName,
		review.Address,
		review.PropertyType,
		review.ReviewText,
		review.Rating,
		review.Status,
	).Scan(&review.CreatedAt)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	query := `
		SELECT id, customer_name, address, property_type, review_text, rating, status, created_at, approved_at
		FROM reviews
		WHERE id = $1
	`

	var rev models.Review
	var approvedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rev.ID,
		&rev.CustomerName,
		&rev.Address,
		&rev.PropertyType,
		&rev.ReviewText,
		&rev.Rating,
		&rev.Status,
		&rev.CreatedAt,
		&approvedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting review: %v", err)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if approvedAt.Valid {
		rev.ApprovedAt = &approvedAt.Time
	}

	return &rev, nil
}

// List returns reviews, newest first, optionally filtered by status.
// An empty status means all reviews.
func (r *reviewRepository) List(ctx context.Context, status string) ([]models.Review, error) {
	query := `
		SELECT id, customer_name, address, property_type, review_text, rating, status, created_at, approved_at
		FROM reviews
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rev models.Review
		var approvedAt sql.NullTime
		if err := rows.Scan(
			&rev.ID,
			&rev.CustomerName,
			&rev.Address,
			&rev.PropertyType,
			&rev.ReviewText,
			&rev.Rating,
			&rev.Status,
			&rev.CreatedAt,
			&approvedAt,
		); err != nil {
			log.Printf("Error scanning review: %v", err)
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		if approvedAt.Valid {
			rev.ApprovedAt = &approvedAt.Time
		}
		reviews = append(reviews, rev)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating reviews: %v", err)
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) SetStatus(ctx context.Context, id string, status string) error {
	query := `
		UPDATE reviews
		SET status = $1,
		    approved_at = CASE WHEN $1 = 'approved' THEN NOW() AT TIME ZONE 'UTC' ELSE approved_at END
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Printf("Error updating review status: %v", err)
		return fmt.Errorf("failed to update review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update review: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting review: %v", err)
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
