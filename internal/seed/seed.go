// Package seed fills the catalog with sample books for demos and load checks.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/snnyvrz/bookshelf/internal/auth"
	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/genre"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
)

const (
	DefaultTotal = 20

	firstYear = 1950
	minPages  = 100
	maxPages  = 800
)

var sampleAuthors = []string{
	"Gabriel García Márquez",
	"Jules Verne",
	"J.K. Rowling",
	"Stephen King",
}

type Result struct {
	Created       int `json:"created"`
	GenresCreated int `json:"genres_created"`
}

func (r Result) Message() string {
	return fmt.Sprintf("Created %d sample books.", r.Created)
}

// Seeder serializes Run calls since rng is not safe for concurrent use.
type Seeder struct {
	mu     sync.Mutex
	books  repository.BookRepository
	genres repository.GenreRepository
	log    *slog.Logger
	rng    *rand.Rand
	now    func() time.Time
	max    int
}

type Option func(*Seeder)

// WithRand makes the generated data reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Seeder) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func New(books repository.BookRepository, genres repository.GenreRepository, maxTotal int, log *slog.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		books:  books,
		genres: genres,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		max:    maxTotal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Seeder) Max() int {
	return s.max
}

// Run creates total sample books owned by actor. Missing genres are replaced
// by the fallback set first. Books created before a failure stay in place.
func (s *Seeder) Run(ctx context.Context, total int, actor auth.User) (Result, error) {
	var res Result

	s.mu.Lock()
	defer s.mu.Unlock()

	if total < 1 || total > s.max {
		return res, domainerrors.Validationf("total must be between 1 and %d", s.max)
	}

	created, err := s.genres.EnsureSeeds(ctx, genre.SampleFallback)
	if err != nil {
		return res, err
	}
	res.GenresCreated = len(created)

	genres, err := s.genres.List(ctx)
	if err != nil {
		return res, err
	}
	if len(genres) == 0 {
		return res, domainerrors.Internal("no genres available for sample books")
	}

	currentYear := s.now().Year()

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		book := model.Book{
			Title:         fmt.Sprintf("Sample Book %d", i),
			Content:       fmt.Sprintf("Sample content for book %d.", i),
			Excerpt:       fmt.Sprintf("A short summary of sample book %d.", i),
			Author:        sampleAuthors[s.rng.Intn(len(sampleAuthors))],
			PublishedYear: firstYear + s.rng.Intn(currentYear-firstYear+1),
			ISBN:          s.isbn(),
			Pages:         minPages + s.rng.Intn(maxPages-minPages+1),
			Status:        model.StatusPublish,
			CreatedBy:     actor.Login,
		}
		g := genres[s.rng.Intn(len(genres))]

		if err := s.books.Create(ctx, &book, []uint{g.ID}); err != nil {
			s.log.Error("sample book failed", "index", i, "error", err)
			return res, err
		}
		res.Created++
	}

	s.log.Info("sample books created",
		"created", res.Created,
		"genres_created", res.GenresCreated,
		"actor", actor.Login,
	)

	return res, nil
}

func (s *Seeder) isbn() string {
	var b strings.Builder
	b.WriteString("978-")
	for range 10 {
		b.WriteByte(byte('0' + s.rng.Intn(10)))
	}
	return b.String()
}
