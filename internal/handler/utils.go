package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/auth"
	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
)

func writeError(c *gin.Context, status int, code, message string) {
	validation.Abort(c, status, code, message)
}

// writeFailure logs err against the request and answers with a generic body.
// Domain errors pick their own status; anything else is a 500.
func writeFailure(c *gin.Context, log *slog.Logger, err error, code, message string) {
	status := statusOf(err)

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	log.Log(c.Request.Context(), level, message,
		"error", err,
		"status", status,
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
	)
	_ = c.Error(err)
	writeError(c, status, code, message)
}

func statusOf(err error) int {
	var derr *domainerrors.Error
	if domainerrors.As(err, &derr) {
		return derr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// parseBookID accepts positive decimal ids only.
func parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) auth.User {
	return auth.FromContext(c.Request.Context())
}

func toBook(b model.Book) Book {
	genres := make([]GenreRef, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, GenreRef{
			ID:    g.ID,
			Name:  g.Name,
			Slug:  g.Slug,
			Color: g.Color,
		})
	}

	var image *string
	if b.FeaturedImage != "" {
		img := b.FeaturedImage
		image = &img
	}

	return Book{
		ID:            b.ID,
		Title:         b.Title,
		Content:       b.Content,
		Excerpt:       b.Excerpt,
		Author:        b.Author,
		PublishedYear: b.PublishedYear,
		ISBN:          b.ISBN,
		Pages:         b.Pages,
		Genres:        genres,
		DateCreated:   model.NewTimestamp(b.CreatedAt),
		DateModified:  model.NewTimestamp(b.UpdatedAt),
		FeaturedImage: image,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBook(b)}
}

func toListBooksResponse(books []model.Book, page, perPage int, total int64, totalPages int) ListBooksResponse {
	data := make([]Book, 0, len(books))
	for _, b := range books {
		data = append(data, toBook(b))
	}

	return ListBooksResponse{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
