package mapper

import (
	"testing"
	"time"

	"tech-innovations-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnovationMapper(t *testing.T) {
	m := NewInnovationMapper()

	t.Run("nil image survives both directions", func(t *testing.T) {
		e := &entity.Innovation{Id: 8, Title: "Lab-Grown Salmon Fillet", Category: "Biotech", Company: "Pelagia Foods", Tags: []string{"food-tech"}}

		model := m.ToModel(e)
		require.Nil(t, model.Image)

		back := m.ToEntity(model)
		assert.Nil(t, back.Image)
		assert.Equal(t, e.Tags, back.Tags)
		assert.Equal(t, e.Title, back.Title)
	})

	t.Run("zero updated_at maps to absent", func(t *testing.T) {
		e := m.ToEntity(m.ToModel(&entity.Innovation{Id: 1, Title: "Quantum"}))
		assert.Nil(t, e.UpdatedAt)
	})

	t.Run("set updated_at is carried", func(t *testing.T) {
		now := time.Now()
		e := m.ToEntity(m.ToModel(&entity.Innovation{Id: 1, Title: "Quantum", UpdatedAt: &now}))
		require.NotNil(t, e.UpdatedAt)
		assert.True(t, e.UpdatedAt.Equal(now))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil))
		assert.Nil(t, m.ToModel(nil))
	})
}
