// Package db opens the catalog database and prepares its schema.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/genre"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
)

// Open builds the dialector for cfg.DBDriver and opens a pool. GORM's own
// log output goes through log.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.DBPath + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	level := gormlogger.Warn
	if cfg.GinMode == "release" {
		level = gormlogger.Error
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.NewSlogLogger(log.With("component", "gorm"), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

// ConnectWithRetry opens the database and pings it until it answers or
// cfg.DBMaxAttempts is exhausted.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for attempt := 1; attempt <= cfg.DBMaxAttempts; attempt++ {
		db, err = connect(ctx, cfg, log)
		if err == nil {
			log.Info("database connected", "driver", cfg.DBDriver, "attempt", attempt)
			return db, nil
		}

		log.Warn("db not ready",
			"attempt", attempt,
			"max_attempts", cfg.DBMaxAttempts,
			"error", err,
		)

		if attempt == cfg.DBMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBRetryDelay):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBMaxAttempts, err)
}

// connect opens a pool and pings it. A pool that does not answer is closed.
func connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the books, genres and book_genres tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Genre{}, &model.Book{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// EnsureDefaultGenres installs the starter genres when the taxonomy is empty.
func EnsureDefaultGenres(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	created, err := repository.NewGormGenreRepository(db).EnsureSeeds(ctx, genre.Defaults)
	if err != nil {
		return err
	}

	if len(created) > 0 {
		log.Info("default genres created", "count", len(created))
	}
	return nil
}
