// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snnyvrz/bookshelf/internal/genre"
	"github.com/snnyvrz/bookshelf/internal/model"
)

// NewTestDB opens a private in-memory sqlite database with the schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Genre{}, &model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewErrorDB opens a database without any tables so every query fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()

	slug := genre.Slugify(name)
	g := model.Genre{
		Name:  name,
		Slug:  slug,
		Color: genre.ColorFor(slug),
	}

	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}

	return g
}

// SeedBook inserts a published book. Zero CreatedAt values are set to now.
func SeedBook(t *testing.T, db *gorm.DB, book model.Book, genres ...model.Genre) model.Book {
	t.Helper()

	if book.Status == "" {
		book.Status = model.StatusPublish
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}
	book.UpdatedAt = book.CreatedAt
	book.Genres = genres

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", book.Title, err)
	}

	return book
}
