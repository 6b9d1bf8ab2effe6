package browse

import (
	"strings"

	"tech-innovations-be/internal/entity"
)

// Filter derives a view from the full record set. The category filter is an
// exact match against the stored label; the text filter is a case-insensitive
// substring match against title, description, company, or any tag. Both
// conditions are conjunctive, and filtering always starts from the full set,
// never from a previous view.
func Filter(all []*entity.Innovation, query, category string) []*entity.Innovation {
	term := strings.ToLower(strings.TrimSpace(query))

	view := make([]*entity.Innovation, 0, len(all))
	for _, i := range all {
		if category != "" && i.Category != category {
			continue
		}
		if term != "" && !matches(i, term) {
			continue
		}
		view = append(view, i)
	}
	return view
}

// Featured is the shortcut view: the featured subset of the full set, in its
// original order. It bypasses the filter/sort pipeline entirely.
func Featured(all []*entity.Innovation) []*entity.Innovation {
	view := make([]*entity.Innovation, 0)
	for _, i := range all {
		if i.Featured {
			view = append(view, i)
		}
	}
	return view
}

func matches(i *entity.Innovation, term string) bool {
	if strings.Contains(strings.ToLower(i.Title), term) ||
		strings.Contains(strings.ToLower(i.Description), term) ||
		strings.Contains(strings.ToLower(i.Company), term) {
		return true
	}
	for _, tag := range i.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
