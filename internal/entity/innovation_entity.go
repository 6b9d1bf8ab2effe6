package entity

import "time"

// Innovation is the catalog's sole domain entity. Records are created by the
// seed command and are read-only for the rest of their lifetime.
type Innovation struct {
	Id          int
	Title       string
	Category    string
	Description string
	Impact      string
	Year        int
	Company     string
	Rating      float64
	Tags        []string
	Image       *string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
