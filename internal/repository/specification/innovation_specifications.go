package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by the integer primary key
type ByID struct {
	ID int
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// CategoryFold filters by category, case-insensitively.
// The stored labels keep their original casing; only the match folds.
type CategoryFold struct {
	Category string
}

func (s CategoryFold) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(category) = LOWER(?)", s.Category)
}

// FeaturedOnly keeps records flagged as featured
type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("featured = ?", true)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// RatingDesc is the catalog's default ordering
func RatingDesc() Specification {
	return OrderBy{Field: "rating", Desc: true}
}
