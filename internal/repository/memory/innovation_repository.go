package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tech-innovations-be/internal/entity"
	"tech-innovations-be/internal/repository/contract"
)

// InnovationRepository is an in-memory stand-in for the Postgres adapter.
// It mirrors the store ordering (rating descending) and the case-folded
// category match so service and controller tests run without a database.
type InnovationRepository struct {
	mu      sync.RWMutex
	records map[int]*entity.Innovation
}

func NewInnovationRepository() *InnovationRepository {
	return &InnovationRepository{
		records: make(map[int]*entity.Innovation),
	}
}

func (r *InnovationRepository) Save(innovation *entity.Innovation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[innovation.Id] = innovation
}

func (r *InnovationRepository) SaveAll(innovations []*entity.Innovation) {
	for _, i := range innovations {
		r.Save(i)
	}
}

func (r *InnovationRepository) FindAll(ctx context.Context) ([]*entity.Innovation, error) {
	return r.collect(func(*entity.Innovation) bool { return true }), nil
}

func (r *InnovationRepository) FindById(ctx context.Context, id int) (*entity.Innovation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.records[id]; ok {
		return i, nil
	}
	return nil, nil
}

func (r *InnovationRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Innovation, error) {
	return r.collect(func(i *entity.Innovation) bool {
		return strings.EqualFold(i.Category, category)
	}), nil
}

func (r *InnovationRepository) FindFeatured(ctx context.Context) ([]*entity.Innovation, error) {
	return r.collect(func(i *entity.Innovation) bool { return i.Featured }), nil
}

func (r *InnovationRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

func (r *InnovationRepository) collect(keep func(*entity.Innovation) bool) []*entity.Innovation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Innovation, 0, len(r.records))
	for _, i := range r.records {
		if keep(i) {
			result = append(result, i)
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Rating > result[b].Rating
	})
	return result
}

var _ contract.InnovationRepository = (*InnovationRepository)(nil)
