package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/auth"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/seed"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

type SeedQuery struct {
	Total *int `form:"total" binding:"omitempty,min=1"`
}

type SeedResult struct {
	Message       string `json:"message"`
	Created       int    `json:"created"`
	GenresCreated int    `json:"genres_created"`
}

type SeedResponse struct {
	Data SeedResult `json:"data"`
}

type SeedHandler struct {
	seeder *seed.Seeder
	policy auth.Policy
	log    *slog.Logger
}

func NewSeedHandler(seeder *seed.Seeder, policy auth.Policy, log *slog.Logger) *SeedHandler {
	return &SeedHandler{seeder: seeder, policy: policy, log: log}
}

func (h *SeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/seed", middleware.Require(h.policy, auth.ActionSeed), h.Seed)
}

// Seed godoc
// @Summary      Generate sample books
// @Description  Creates total sample books, adding fallback genres when none exist. Each call adds more records.
// @Tags         seed
// @Produce      json
// @Security     BearerAuth
// @Param        total  query     int  false  "Number of books"  default(20) minimum(1)
// @Success      200    {object}  SeedResponse
// @Failure      400    {object}  validation.ErrorResponse   "Invalid total"
// @Failure      401    {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403    {object}  validation.ErrorResponse   "Requires manage_options"
// @Failure      500    {object}  validation.ErrorResponse   "Internal server error"
// @Router       /seed [get]
func (h *SeedHandler) Seed(c *gin.Context) {
	var q SeedQuery
	if !validation.BindAndValidateQuery(c, &q) {
		return
	}

	total := seed.DefaultTotal
	if q.Total != nil {
		total = *q.Total
	}
	if total > h.seeder.Max() {
		validation.AbortField(c, "total", "max",
			fmt.Sprintf("total must not exceed %d", h.seeder.Max()),
		)
		return
	}

	res, err := h.seeder.Run(c.Request.Context(), total, currentUser(c))
	if err != nil {
		writeFailure(c, h.log, err,
			"SEED_FAILED",
			fmt.Sprintf("failed to create sample books (%d created)", res.Created),
		)
		return
	}

	c.JSON(http.StatusOK, SeedResponse{Data: SeedResult{
		Message:       res.Message(),
		Created:       res.Created,
		GenresCreated: res.GenresCreated,
	}})
}
