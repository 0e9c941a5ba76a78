package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/logger"
	"github.com/snnyvrz/bookshelf/internal/model"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		GinMode:       "test",
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "nested", "bookshelf.db"),
		DBMaxAttempts: 2,
		DBRetryDelay:  time.Millisecond,
	}
}

func TestConnectMigrateAndDefaults(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	database, err := ConnectWithRetry(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(database))
	require.NoError(t, EnsureDefaultGenres(ctx, database, logger.Discard()))
	require.NoError(t, EnsureDefaultGenres(ctx, database, logger.Discard()))

	var genres []model.Genre
	require.NoError(t, database.Order("id").Find(&genres).Error)
	require.Len(t, genres, 6)
	assert.Equal(t, "Fiction", genres[0].Name)
	assert.Equal(t, "fiction", genres[0].Slug)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, genres[0].Color)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DBDriver = "mysql"

	_, err := Open(cfg, logger.Discard())
	assert.ErrorContains(t, err, "unsupported")
}

func TestConnect_FailedPingReturnsNoPool(t *testing.T) {
	cfg := sqliteConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	database, err := connect(ctx, cfg, logger.Discard())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, database)
}

func TestConnectWithRetry_ContextCancelled(t *testing.T) {
	cfg := &config.Config{
		DBDriver:      "postgres",
		DBHost:        "127.0.0.1",
		DBPort:        "1",
		DBName:        "x",
		DBSSLMode:     "disable",
		TZ:            "UTC",
		DBMaxAttempts: 3,
		DBRetryDelay:  time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConnectWithRetry(ctx, cfg, logger.Discard())
	assert.Error(t, err)
}
