package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"goldsite/internal/models"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context, publishedOnly bool) ([]models.Resource, error)
	Update(ctx context.Context, id string, req *models.UpdateResourceRequest) error
	Delete(ctx context.Context, id string) error
}

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (id, title, description, thumbnail_url, file_url, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		resource.ID,
		resource.Title,
		resource.Description,
		resource.ThumbnailURL,
		resource.FileURL,
		resource.Category,
		resource.Status,
	).Scan(&resource.CreatedAt, &resource.UpdatedAt)
	if err != nil {
		log.Printf("Error creating resource: %v", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	query := `
		SELECT id, title, description, thumbnail_url, file_url, category, status, created_at, updated_at
		FROM resources
		WHERE id = $1
	`

	var res models.Resource
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&res.ThumbnailURL,
		&res.FileURL,
		&res.Category,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting resource: %v", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return &res, nil
}

func (r *resourceRepository) List(ctx context.Context, publishedOnly bool) ([]models.Resource, error) {
	query := `
		SELECT id, title, description, thumbnail_url, file_url, category, status, created_at, updated_at
		FROM resources
	`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing resources: %v", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,
			&res.ThumbnailURL,
			&res.FileURL,
			&res.Category,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning resource: %v", err)
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, res)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating resources: %v", err)
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}

	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, id string, req *models.UpdateResourceRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	addString := func(col string, v *string) {
		if v != nil {
			setValues = append(setValues, fmt.Sprintf("%s = $%d", col, argId))
			args = append(args, *v)
			argId++
		}
	}

	addString("title", req.Title)
	addString("description", req.Description)
	addString("thumbnail_url", req.ThumbnailURL)
	addString("file_url", req.FileURL)
	addString("category", req.Category)
	addString("status", req.Status)

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE resources SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating resource: %v", err)
		return fmt.Errorf("failed to update resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update resource: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM resources WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting resource: %v", err)
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
