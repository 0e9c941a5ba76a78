package model

import (
	"time"
)

// Genre is a node of the hierarchical genre taxonomy.
type Genre struct {
	ID                  uint   `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	Slug                string `gorm:"not null;uniqueIndex"`
	Description         string
	Color               string
	DescriptionExtended string
	ParentID            *uint  `gorm:"index"`
	Parent              *Genre `gorm:"foreignKey:ParentID"`
	// Count is filled by queries that join book_genres; it is not a column.
	Count     int64 `gorm:"->;-:migration"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
