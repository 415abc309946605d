package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"goldsite/internal/interfaces"
	"goldsite/internal/models"
)

type caseStudyRepository struct {
	db *sql.DB
}

func NewCaseStudyRepository(db *sql.DB) interfaces.CaseStudyRepository {
	return &caseStudyRepository{db: db}
}

func (r *caseStudyRepository) Create(ctx context.Context, cs *models.CaseStudy) error {
	query := `
		INSERT INTO case_studies (id, title, slug, client_name, location, description, challenge, solution, results, roi_percentage, image_url, gallery_images, status, featured, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		cs.ID,
		cs.Title,
		cs.Slug,
		cs.ClientName,
		cs.Location,
		cs.Description,
		cs.Challenge,
		cs.Solution,
		cs.Results,
		cs.ROIPercentage,
		cs.ImageURL,
		pq.Array(cs.GalleryImages),
		cs.Status,
		cs.Featured,
		cs.PublishedAt,
	).Scan(&cs.CreatedAt, &cs.UpdatedAt)
	if err != nil {
		log.Printf("Error creating case study: %v", err)
		return fmt.Errorf("failed to create case study: %w", err)
	}

	return nil
}

func (r *caseStudyRepository) GetByID(ctx context.Context, id string) (*models.CaseStudy, error) {
	return r.getByField(ctx, "id", id)
}

func (r *caseStudyRepository) GetBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *caseStudyRepository) getByField(ctx context.Context, field string, value string) (*models.CaseStudy, error) {
	query := fmt.Sprintf(`
		SELECT id, title, slug, client_name, location, description, challenge, solution, results, roi_percentage, image_url, gallery_images, status, featured, published_at, created_at, updated_at
		FROM case_studies
		WHERE %s = $1
	`, field)

	var cs models.CaseStudy
	var publishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&cs.ID,
		&cs.Title,
		&cs.Slug,
		&cs.ClientName,
		&cs.Location,
		&cs.Description,
		&cs.Challenge,
		&cs.Solution,
		&cs.Results,
		&cs.ROIPercentage,
		&cs.ImageURL,
		pq.Array(&cs.GalleryImages),
		&cs.Status,
		&cs.Featured,
		&publishedAt,
		&cs.CreatedAt,
		&cs.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting case study: %v", err)
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}
	if publishedAt.Valid {
		cs.PublishedAt = &publishedAt.Time
	}

	return &cs, nil
}

func (r *caseStudyRepository) List(ctx context.Context, publishedOnly bool, featuredOnly bool) ([]models.CaseStudy, error) {
	query := `
		SELECT id, title, slug, client_name, location, description, challenge, solution, results, roi_percentage, image_url, gallery_images, status, featured, published_at, created_at, updated_at
		FROM case_studies
	`

	var conds []string
	if publishedOnly {
		conds = append(conds, "status = 'published'")
	}
	if featuredOnly {
		conds = append(conds, "featured = TRUE")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing case studies: %v", err)
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	defer rows.Close()

	var studies []models.CaseStudy
	for rows.Next() {
		var cs models.CaseStudy
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&cs.ID,
			&cs.Title,
			&cs.Slug,
			&cs.ClientName,
			&cs.Location,
			&cs.Description,
			&cs.Challenge,
			&cs.Solution,
			&cs.Results,
			&cs.ROIPercentage,
			&cs.ImageURL,
			pq.Array(&cs.GalleryImages),
			&cs.Status,
			&cs.Featured,
			&publishedAt,
			&cs.CreatedAt,
			&cs.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning case study: %v", err)
			return nil, fmt.Errorf("failed to scan case study: %w", err)
		}
		if publishedAt.Valid {
			cs.PublishedAt = &publishedAt.Time
		}
		studies = append(studies, cs)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating case studies: %v", err)
		return nil, fmt.Errorf("error iterating case studies: %w", err)
	}

	return studies, nil
}

func (r *caseStudyRepository) Update(ctx context.Context, id string, req *models.UpdateCaseStudyRequest) error {
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
	addString("slug", req.Slug)
	addString("client_name", req.ClientName)
	addString("location", req.Location)
	addString("description", req.Description)
	addString("challenge", req.Challenge)
	addString("solution", req.Solution)
	addString("results", req.Results)

	if req.ROIPercentage != nil {
		setValues = append(setValues, fmt.Sprintf("roi_percentage = $%d", argId))
		args = append(args, *req.ROIPercentage)
		argId++
	}

	addString("image_url", req.ImageURL)

	if req.GalleryImages != nil {
		setValues = append(setValues, fmt.Sprintf("gallery_images = $%d", argId))
		args = append(args, pq.Array(*req.GalleryImages))
		argId++
	}

	if req.Featured != nil {
		setValues = append(setValues, fmt.Sprintf("featured = $%d", argId))
		args = append(args, *req.Featured)
		argId++
	}

	if req.Status != nil {
		setValues = append(setValues, fmt.Sprintf("status = $%d", argId))
		args = append(args, *req.Status)
		argId++

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
		"UPDATE case_studies SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating case study: %v", err)
		return fmt.Errorf("failed to update case study: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update case study: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *caseStudyRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM case_studies WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting case study: %v", err)
		return fmt.Errorf("failed to delete case study: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete case study: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
