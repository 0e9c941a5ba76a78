package model

import (
	"time"
)

// StatusPublish marks books visible in listings and stats.
const StatusPublish = "publish"

type Book struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"not null"`
	Content       string
	Excerpt       string
	Author        string `gorm:"not null;index"`
	PublishedYear int    `gorm:"index"`
	ISBN          string
	Pages         int
	FeaturedImage string
	Status        string  `gorm:"not null;default:publish;index"`
	CreatedBy     string  `gorm:"index"`
	Genres        []Genre `gorm:"many2many:book_genres;"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnerLogin reports who created the book; used by capability checks.
func (b *Book) OwnerLogin() string {
	return b.CreatedBy
}
