// Package server composes middleware, handlers and routes into the HTTP engine.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/snnyvrz/bookshelf/internal/auth"
	"github.com/snnyvrz/bookshelf/internal/docs"
	"github.com/snnyvrz/bookshelf/internal/handler"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/ratelimit"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/seed"
	"github.com/snnyvrz/bookshelf/internal/web"
)

const APIBasePath = "/api/bookshelf/v1"

type Deps struct {
	DB        *gorm.DB
	Logger    *slog.Logger
	Users     *auth.Directory
	Policy    auth.Policy
	Limiter   *ratelimit.KeyedRateLimiter
	SeedMax   int
	Version   string
	StartTime time.Time
}

// New builds the engine. Middleware and routes are listed here explicitly.
func New(d Deps) (*gin.Engine, error) {
	if d.Policy == nil {
		d.Policy = auth.DefaultPolicy
	}

	e := gin.New()
	if err := e.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		return nil, err
	}

	e.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
	)

	books := repository.NewGormBookRepository(d.DB)
	genres := repository.NewGormGenreRepository(d.DB)
	seeder := seed.New(books, genres, d.SeedMax, d.Logger)

	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	handler.NewHealthHandler(sqlDB, d.StartTime, d.Version, d.Logger).RegisterRoutes(e)

	api := e.Group(APIBasePath,
		middleware.RateLimit(d.Limiter, d.Logger),
		middleware.Authenticate(d.Users),
	)
	{
		handler.NewBookHandler(books, d.Policy, d.Logger).RegisterRoutes(api)
		handler.NewGenreHandler(genres, d.Policy, d.Logger).RegisterRoutes(api)
		handler.NewStatsHandler(books, genres, d.Logger).RegisterRoutes(api)
		handler.NewSeedHandler(seeder, d.Policy, d.Logger).RegisterRoutes(api)
		handler.NewMeHandler().RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = APIBasePath
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ui, err := web.New(APIBasePath, d.Logger)
	if err != nil {
		return nil, err
	}
	ui.RegisterRoutes(e)

	return e, nil
}

// Serve runs h on addr until ctx is done, then drains in-flight requests.
func Serve(ctx context.Context, addr string, h http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
