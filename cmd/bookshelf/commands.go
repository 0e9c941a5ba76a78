package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/snnyvrz/bookshelf/internal/auth"
	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/db"
	"github.com/snnyvrz/bookshelf/internal/logger"
	"github.com/snnyvrz/bookshelf/internal/ratelimit"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/seed"
	"github.com/snnyvrz/bookshelf/internal/server"
)

// cliActor is the identity recorded on books created from the command line.
var cliActor = auth.User{Login: "cli", Role: auth.RoleAdministrator}

type app struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Bookshelf catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{
				Writer:      cmd.ErrOrStderr(),
				Environment: cfg.AppEnv,
				Level:       logger.ParseLevel(cfg.LogLevel),
			})
			slog.SetDefault(a.log)
			gin.SetMode(cfg.GinMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply schema migrations and default genres",
			RunE: func(cmd *cobra.Command, _ []string) error {
				database, err := a.openDB(cmd.Context())
				if err != nil {
					return err
				}
				defer closeDB(database)
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
				return nil
			},
		},
		newSeedCmd(a),
	)

	return root
}

func newSeedCmd(a *app) *cobra.Command {
	var total int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create sample books",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			seeder := seed.New(
				repository.NewGormBookRepository(database),
				repository.NewGormGenreRepository(database),
				a.cfg.SeedMax,
				a.log,
			)

			res, err := seeder.Run(cmd.Context(), total, cliActor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message())
			return nil
		},
	}

	cmd.Flags().IntVarP(&total, "total", "n", seed.DefaultTotal, "number of books to create")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	startTime := time.Now()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(database)

	users, err := auth.ParseDirectory(a.cfg.AuthUsers)
	if err != nil {
		return err
	}
	if users.Len() == 0 {
		a.log.Warn("no AUTH_USERS configured, write endpoints will reject every request")
	}

	engine, err := server.New(server.Deps{
		DB:        database,
		Logger:    a.log,
		Users:     users,
		Limiter:   ratelimit.New(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst),
		SeedMax:   a.cfg.SeedMax,
		Version:   version,
		StartTime: startTime,
	})
	if err != nil {
		return err
	}

	return server.Serve(ctx, a.cfg.HTTPAddr, engine, a.log)
}

func (a *app) openDB(ctx context.Context) (*gorm.DB, error) {
	database, err := db.ConnectWithRetry(ctx, a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		closeDB(database)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := db.EnsureDefaultGenres(ctx, database, a.log); err != nil {
		closeDB(database)
		return nil, err
	}
	return database, nil
}

func closeDB(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
