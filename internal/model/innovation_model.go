package model

import (
	"time"

	"gorm.io/datatypes"
)

type Innovation struct {
	Id          int                        `gorm:"primaryKey"`
	Title       string                     `gorm:"type:varchar(255);not null"`
	Category    string                     `gorm:"type:varchar(100);not null;index:idx_innovations_category"`
	Description string                     `gorm:"type:text;not null"`
	Impact      string                     `gorm:"type:text;not null"`
	Year        int                        `gorm:"not null"`
	Company     string                     `gorm:"type:varchar(255);not null"`
	Rating      float64                    `gorm:"type:decimal(3,1);not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"not null"`
	Image       *string                    `gorm:"type:varchar(500)"`
	Featured    bool                       `gorm:"not null;default:false"`
	CreatedAt   time.Time                  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                  `gorm:"autoUpdateTime"`
}

func (Innovation) TableName() string {
	return "innovations"
}
