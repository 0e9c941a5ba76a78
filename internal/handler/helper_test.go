package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snnyvrz/bookshelf/internal/auth"
	"github.com/snnyvrz/bookshelf/internal/logger"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/seed"
)

const (
	adminToken      = "admin-token"
	editorToken     = "editor-token"
	authorToken     = "author-token"
	subscriberToken = "subscriber-token"
)

func testDirectory(t *testing.T) *auth.Directory {
	t.Helper()

	dir, err := auth.ParseDirectory([]string{
		"ana:administrator:" + adminToken,
		"ed:editor:" + editorToken,
		"au:author:" + authorToken,
		"sub:subscriber:" + subscriberToken,
	})
	if err != nil {
		t.Fatalf("failed to build user directory: %v", err)
	}
	return dir
}

func setupTestRouterWithRepos(t *testing.T, books repository.BookRepository, genres repository.GenreRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.Discard()
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Authenticate(testDirectory(t)))

	api := r.Group("")
	NewBookHandler(books, auth.DefaultPolicy, log).RegisterRoutes(api)
	NewGenreHandler(genres, auth.DefaultPolicy, log).RegisterRoutes(api)
	NewStatsHandler(books, genres, log).RegisterRoutes(api)
	NewMeHandler().RegisterRoutes(api)

	seeder := seed.New(books, genres, 50, log, seed.WithRand(rand.New(rand.NewSource(7))))
	NewSeedHandler(seeder, auth.DefaultPolicy, log).RegisterRoutes(api)

	return r
}

func setupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	return setupTestRouterWithRepos(t,
		repository.NewGormBookRepository(db),
		repository.NewGormGenreRepository(db),
	)
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}
