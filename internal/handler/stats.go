package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/stats"
)

type StatsResponse struct {
	Data stats.Summary `json:"data"`
}

type StatsHandler struct {
	books  repository.BookRepository
	genres repository.GenreRepository
	log    *slog.Logger
}

func NewStatsHandler(books repository.BookRepository, genres repository.GenreRepository, log *slog.Logger) *StatsHandler {
	return &StatsHandler{books: books, genres: genres, log: log}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
}

// GetStats godoc
// @Summary      Catalog statistics
// @Description  Totals, books per publication year and the ten most prolific authors
// @Tags         stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalGenres, err := h.genres.Count(ctx)
	if err != nil {
		writeFailure(c, h.log, err, "STATS_FAILED", "failed to compute stats")
		return
	}

	rows, err := h.books.Facets(ctx)
	if err != nil {
		writeFailure(c, h.log, err, "STATS_FAILED", "failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: stats.Compute(rows, totalGenres)})
}
