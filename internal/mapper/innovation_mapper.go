package mapper

import (
	"time"

	"tech-innovations-be/internal/entity"
	"tech-innovations-be/internal/model"

	"gorm.io/datatypes"
)

type InnovationMapper struct{}

func NewInnovationMapper() *InnovationMapper {
	return &InnovationMapper{}
}

func (m *InnovationMapper) ToEntity(i *model.Innovation) *entity.Innovation {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Innovation{
		Id:          i.Id,
		Title:       i.Title,
		Category:    i.Category,
		Description: i.Description,
		Impact:      i.Impact,
		Year:        i.Year,
		Company:     i.Company,
		Rating:      i.Rating,
		Tags:        []string(i.Tags),
		Image:       i.Image,
		Featured:    i.Featured,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InnovationMapper) ToModel(i *entity.Innovation) *model.Innovation {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Innovation{
		Id:          i.Id,
		Title:       i.Title,
		Category:    i.Category,
		Description: i.Description,
		Impact:      i.Impact,
		Year:        i.Year,
		Company:     i.Company,
		Rating:      i.Rating,
		Tags:        datatypes.NewJSONSlice(i.Tags),
		Image:       i.Image,
		Featured:    i.Featured,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InnovationMapper) ToEntities(innovations []*model.Innovation) []*entity.Innovation {
	entities := make([]*entity.Innovation, len(innovations))
	for i, n := range innovations {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *InnovationMapper) ToModels(innovations []*entity.Innovation) []*model.Innovation {
	models := make([]*model.Innovation, len(innovations))
	for i, n := range innovations {
		models[i] = m.ToModel(n)
	}
	return models
}
