package contract

import (
	"context"

	"tech-innovations-be/internal/entity"
)

// InnovationRepository is the read-only store adapter. FindById returns
// (nil, nil) when no record exists; an error always means a store failure.
type InnovationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Innovation, error)
	FindById(ctx context.Context, id int) (*entity.Innovation, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Innovation, error)
	FindFeatured(ctx context.Context) ([]*entity.Innovation, error)
	Count(ctx context.Context) (int64, error)
}
