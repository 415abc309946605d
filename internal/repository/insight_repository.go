package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"goldsite/internal/interfaces"
	"goldsite/internal/models"
)

type insightRepository struct {
	db *sql.DB
}

func NewInsightRepository(db *sql.DB) interfaces.InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, insight *models.Insight) error {
	query := `
		INSERT INTO insights (id, title, slug, content, excerpt, author, featured_image_url, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		insight.ID,
		insight.Title,
		insight.Slug,
		insight.Content,
		insight.Excerpt,
		insight.Author,
		insight.FeaturedImageURL,
		insight.Status,
		insight.PublishedAt,
	).Scan(&insight.CreatedAt, &insight.UpdatedAt)
	if err != nil {
		log.Printf("Error creating insight: %v", err)
		return fmt.Errorf("failed to create insight: %w", err)
	}

	return nil
}

func (r *insightRepository) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	return r.getByField(ctx, "id", id)
}

func (r *insightRepository) GetBySlug(ctx context.Context, slug string) (*models.Insight, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *insightRepository) getByField(ctx context.Context, field string, value string) (*models.Insight, error) {
	query := fmt.Sprintf(`
		SELECT id, title, slug, content, excerpt, author, featured_image_url, status, published_at, created_at, updated_at
		FROM insights
		WHERE %s = $1
	`, field)

	var ins models.Insight
	var publishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&ins.ID,
		&ins.Title,
		&ins.Slug,
		&ins.Content,
		&ins.Excerpt,
		&ins.Author,
		&ins.FeaturedImageURL,
		&ins.Status,
		&publishedAt,
		&ins.CreatedAt,
		&ins.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting insight: %v", err)
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	if publishedAt.Valid {
		ins.PublishedAt = &publishedAt.Time
	}

	return &ins, nil
}

func (r *insightRepository) List(ctx context.Context, publishedOnly bool) ([]models.Insight, error) {
	query := `
		SELECT id, title, slug, content, excerpt, author, featured_image_url, status, published_at, created_at, updated_at
		FROM insights
	`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing insights: %v", err)
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	defer rows.Close()

	var insights []models.Insight
	for rows.Next() {
		var ins models.Insight
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&ins.ID,
			&ins.Title,
			&ins.Slug,
			&ins.Content,
			&ins.Excerpt,
			&ins.Author,
			&ins.FeaturedImageURL,
			&ins.Status,
			&publishedAt,
			&ins.CreatedAt,
			&ins.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning insight: %v", err)
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		if publishedAt.Valid {
			ins.PublishedAt = &publishedAt.Time
		}
		insights = append(insights, ins)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating insights: %v", err)
		return nil, fmt.Errorf("error iterating insights: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) Update(ctx context.Context, id string, req *models.UpdateInsightRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	if req.Title != nil {
		setValues = append(setValues, fmt.Sprintf("title = $%d", argId))
		args = append(args, *req.Title)
		argId++
	}

	if req.Slug != nil {
		setValues = append(setValues, fmt.Sprintf("slug = $%d", argId))
		args = append(args, *req.Slug)
		argId++
	}

	if req.Content != nil {
		setValues = append(setValues, fmt.Sprintf("content = $%d", argId))
		args = append(args, *req.Content)
		argId++
	}

	if req.Excerpt != nil {
		setValues = append(setValues, fmt.Sprintf("excerpt = $%d", argId))
		args = append(args, *req.Excerpt)
		argId++
	}

	if req.Author != nil {
		setValues = append(setValues, fmt.Sprintf("author = $%d", argId))
		args = append(args, *req.Author)
		argId++
	}

	if req.FeaturedImageURL != nil {
		setValues = append(setValues, fmt.Sprintf("featured_image_url = $%d", argId))
		args = append(args, *req.FeaturedImageURL)
		argId++
	}

	if req.Status != nil {
		setValues = append(setValues, fmt.Sprintf("status = $%d", argId))
		args = append(args, *req.Status)
		argId++

		// Stamp published_at on the first transition to published.
		if *req.Status == "published" {
			setValues = append(setValues, "published_at = COALESCE(published_at, NOW() AT TIME ZONE 'UTC')")
		}
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE insights SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating insight: %v", err)
		return fmt.Errorf("failed to update insight: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update insight: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *insightRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM insights WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting insight: %v", err)
		return fmt.Errorf("failed to delete insight: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete insight: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
