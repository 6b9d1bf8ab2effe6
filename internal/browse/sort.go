package browse

import (
	"sort"

	"tech-innovations-be/internal/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a browse view.
type SortKey string

const (
	SortByRating  SortKey = "rating"
	SortByTitle   SortKey = "title"
	SortByYear    SortKey = "year"
	SortByCompany SortKey = "company"
)

// DefaultSortKey is what every unknown or empty sort value falls back to.
const DefaultSortKey = SortByRating

// ParseSortKey maps a raw sort value to a SortKey, falling back to rating
// descending for anything unrecognized.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByRating, SortByTitle, SortByYear, SortByCompany:
		return SortKey(raw)
	default:
		return DefaultSortKey
	}
}

// Sort returns a new slice ordered by the given key. The input is left
// untouched. Title and company order locale-aware, ratings and years
// numerically descending.
func Sort(view []*entity.Innovation, key SortKey) []*entity.Innovation {
	sorted := make([]*entity.Innovation, len(view))
	copy(sorted, view)

	var less func(a, b *entity.Innovation) bool
	switch key {
	case SortByTitle:
		c := collate.New(language.English)
		less = func(a, b *entity.Innovation) bool {
			return c.CompareString(a.Title, b.Title) < 0
		}
	case SortByYear:
		less = func(a, b *entity.Innovation) bool {
			return a.Year > b.Year
		}
	case SortByCompany:
		c := collate.New(language.English)
		less = func(a, b *entity.Innovation) bool {
			return c.CompareString(a.Company, b.Company) < 0
		}
	default:
		less = func(a, b *entity.Innovation) bool {
			return a.Rating > b.Rating
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
