package interfaces

import (
	"context"

	"goldsite/internal/models"
)

type CaseStudyRepository interface {
	Create(ctx context.Context, cs *models.CaseStudy) error
	GetByID(ctx context.Context, id string) (*models.CaseStudy, error)
	GetBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
	List(ctx context.Context, publishedOnly bool, featuredOnly bool) ([]models.CaseStudy, error)
	Update(ctx context.Context, id string, req *models.UpdateCaseStudyRequest) error
	Delete(ctx context.Context, id string) error
}
