package service_test

import (
	"context"
	"errors"
	"testing"

	"tech-innovations-be/internal/dto"
	"tech-innovations-be/internal/entity"
	"tech-innovations-be/internal/repository/memory"
	"tech-innovations-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// brokenRepository simulates a failing store.
type brokenRepository struct{}

var errStore = errors.New("connection refused")

func (brokenRepository) FindAll(context.Context) ([]*entity.Innovation, error) {
	return nil, errStore
}
func (brokenRepository) FindById(context.Context, int) (*entity.Innovation, error) {
	return nil, errStore
}
func (brokenRepository) FindByCategory(context.Context, string) ([]*entity.Innovation, error) {
	return nil, errStore
}
func (brokenRepository) FindFeatured(context.Context) ([]*entity.Innovation, error) {
	return nil, errStore
}
func (brokenRepository) Count(context.Context) (int64, error) { return 0, errStore }

func seededRepository() *memory.InnovationRepository {
	repo := memory.NewInnovationRepository()
	repo.SaveAll([]*entity.Innovation{
		{Id: 1, Title: "Quantum", Company: "Quantia Labs", Category: "Hardware", Year: 2024, Rating: 9.2, Tags: []string{"quantum"}, Featured: true},
		{Id: 2, Title: "Widget", Company: "Widgets Inc", Category: "Software", Year: 2021, Rating: 4.0, Tags: []string{"tools"}, Featured: false},
		{Id: 3, Title: "Aerofoil", Company: "Zephyr", Category: "hardware", Year: 2023, Rating: 7.5, Tags: []string{"aviation"}, Featured: true},
	})
	return repo
}

func newService(t *testing.T) service.ICatalogService {
	t.Helper()
	return service.NewCatalogService(seededRepository(), nil, nopLogger{})
}

func TestList(t *testing.T) {
	svc := newService(t)

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 3)

	for i := 0; i < len(res)-1; i++ {
		assert.GreaterOrEqual(t, res[i].Rating, res[i+1].Rating)
	}
}

func TestShow(t *testing.T) {
	svc := newService(t)

	t.Run("returns the record for a known id", func(t *testing.T) {
		res, err := svc.Show(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "Quantum", res.Title)
		assert.Equal(t, 9.2, res.Rating)
	})

	t.Run("every listed record round-trips by id", func(t *testing.T) {
		all, err := svc.List(context.Background())
		require.NoError(t, err)
		for _, r := range all {
			got, err := svc.Show(context.Background(), r.Id)
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
	})

	t.Run("absent id is nil, not an error", func(t *testing.T) {
		res, err := svc.Show(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestListByCategory(t *testing.T) {
	svc := newService(t)

	t.Run("matches case-insensitively", func(t *testing.T) {
		res, err := svc.ListByCategory(context.Background(), "HARDWARE")
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 1, res[0].Id)
		assert.Equal(t, 3, res[1].Id)
	})

	t.Run("equals the case-folded subset of the full list", func(t *testing.T) {
		all, err := svc.List(context.Background())
		require.NoError(t, err)
		byCat, err := svc.ListByCategory(context.Background(), "software")
		require.NoError(t, err)

		var expected []*dto.InnovationResponse
		for _, r := range all {
			if r.Category == "Software" || r.Category == "software" {
				expected = append(expected, r)
			}
		}
		assert.Equal(t, expected, byCat)
	})

	t.Run("unknown category yields an empty sequence", func(t *testing.T) {
		res, err := svc.ListByCategory(context.Background(), "Nonexistent")
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestBrowse(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	t.Run("query filters the full set", func(t *testing.T) {
		res, err := svc.Browse(ctx, &dto.BrowseRequest{Query: "quant"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, 1, res[0].Id)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		res, err := svc.Browse(ctx, &dto.BrowseRequest{Category: "Software"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, 2, res[0].Id)
	})

	t.Run("unknown sort falls back to rating", func(t *testing.T) {
		res, err := svc.Browse(ctx, &dto.BrowseRequest{Sort: "bogus"})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, []int{1, 3, 2}, []int{res[0].Id, res[1].Id, res[2].Id})
	})

	t.Run("featured bypasses filters and sort", func(t *testing.T) {
		res, err := svc.Browse(ctx, &dto.BrowseRequest{Query: "widget", Featured: true})
		require.NoError(t, err)
		require.Len(t, res, 2)
		for _, r := range res {
			assert.True(t, r.Featured)
		}
	})
}

func TestStoreFailure(t *testing.T) {
	svc := service.NewCatalogService(brokenRepository{}, nil, nopLogger{})
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Show(ctx, 1)
	assert.ErrorIs(t, err, errStore)

	_, err = svc.ListByCategory(ctx, "Hardware")
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Browse(ctx, &dto.BrowseRequest{})
	assert.ErrorIs(t, err, errStore)
}
