package implementation

import (
	"context"
	"errors"

	"tech-innovations-be/internal/entity"
	"tech-innovations-be/internal/mapper"
	"tech-innovations-be/internal/model"
	"tech-innovations-be/internal/repository/contract"
	"tech-innovations-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InnovationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InnovationMapper
}

func NewInnovationRepository(db *gorm.DB) contract.InnovationRepository {
	return &InnovationRepositoryImpl{
		db:     db,
		mapper: mapper.NewInnovationMapper(),
	}
}

func (r *InnovationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InnovationRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Innovation, error) {
	var models []*model.Innovation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InnovationRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Innovation, error) {
	return r.findAll(ctx, specification.RatingDesc())
}

func (r *InnovationRepositoryImpl) FindById(ctx context.Context, id int) (*entity.Innovation, error) {
	var m model.Innovation
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InnovationRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]*entity.Innovation, error) {
	return r.findAll(ctx,
		specification.CategoryFold{Category: category},
		specification.RatingDesc(),
	)
}

func (r *InnovationRepositoryImpl) FindFeatured(ctx context.Context) ([]*entity.Innovation, error) {
	return r.findAll(ctx,
		specification.FeaturedOnly{},
		specification.RatingDesc(),
	)
}

func (r *InnovationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Innovation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
