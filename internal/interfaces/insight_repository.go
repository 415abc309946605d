package interfaces

import (
	"context"

	"goldsite/internal/models"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *models.Insight) error
	GetByID(ctx context.Context, id string) (*models.Insight, error)
	GetBySlug(ctx context.Context, slug string) (*models.Insight, error)
	List(ctx context.Context, publishedOnly bool) ([]models.Insight, error)
	Update(ctx context.Context, id string, req *models.UpdateInsightRequest) error
	Delete(ctx context.Context, id string) error
}
