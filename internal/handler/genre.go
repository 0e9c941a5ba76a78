package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/auth"
	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/genre"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/sanitize"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

type Genre struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Slug                string `json:"slug"`
	Description         string `json:"description"`
	ParentID            *uint  `json:"parent_id"`
	Count               int64  `json:"count"`
	Color               string `json:"color"`
	DescriptionExtended string `json:"description_extended"`
}

type ListGenresResponse struct {
	Data []Genre `json:"data"`
}

type GenreResponse struct {
	Data Genre `json:"data"`
}

// CreateGenreRequest derives the slug from the name and the color from the
// slug when they are left empty.
type CreateGenreRequest struct {
	Name                string `json:"name" binding:"notblank,max=200"`
	Slug                string `json:"slug" binding:"max=200"`
	Description         string `json:"description" binding:"max=2000"`
	ParentID            *uint  `json:"parent_id"`
	Color               string `json:"color" binding:"omitempty,hexrgb" example:"#3b82f6"`
	DescriptionExtended string `json:"description_extended" binding:"max=10000"`
}

// UpdateGenreRequest changes supplied fields only. An empty color resets it
// to the derived one and a parent_id of 0 moves the genre to the top level.
type UpdateGenreRequest struct {
	Name                *string `json:"name" binding:"omitempty,notblank,max=200"`
	Slug                *string `json:"slug" binding:"omitempty,max=200"`
	Description         *string `json:"description" binding:"omitempty,max=2000"`
	ParentID            *uint   `json:"parent_id"`
	Color               *string `json:"color" binding:"omitempty,hexrgb" example:"#3b82f6"`
	DescriptionExtended *string `json:"description_extended" binding:"omitempty,max=10000"`
}

func (r UpdateGenreRequest) empty() bool {
	return r.Name == nil && r.Slug == nil && r.Description == nil &&
		r.ParentID == nil && r.Color == nil && r.DescriptionExtended == nil
}

type DeletedGenre struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

type DeleteGenreResponse struct {
	Data DeletedGenre `json:"data"`
}

type GenreHandler struct {
	repo   repository.GenreRepository
	policy auth.Policy
	log    *slog.Logger
}

func NewGenreHandler(repo repository.GenreRepository, policy auth.Policy, log *slog.Logger) *GenreHandler {
	return &GenreHandler{repo: repo, policy: policy, log: log}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	genres := r.Group("/genres")
	{
		manage := middleware.Require(h.policy, auth.ActionManageGenres)

		genres.GET("", h.ListGenres)
		genres.POST("", manage, h.CreateGenre)
		genres.GET("/:id", h.GetGenreByID)
		genres.PUT("/:id", manage, h.UpdateGenre)
		genres.PATCH("/:id", manage, h.UpdateGenre)
		genres.DELETE("/:id", manage, h.DeleteGenre)
	}
}

// ListGenres godoc
// @Summary      List genres
// @Description  All genres ordered by name, including those without books
// @Tags         genres
// @Produce      json
// @Success      200  {object}  ListGenresResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeFailure(c, h.log, err,
			"GENRE_LIST_FAILED",
			"failed to fetch genres",
		)
		return
	}

	data := make([]Genre, 0, len(genres))
	for _, g := range genres {
		data = append(data, toGenre(g))
	}

	c.JSON(http.StatusOK, ListGenresResponse{Data: data})
}

// GetGenreByID godoc
// @Summary      Get a genre by ID
// @Tags         genres
// @Produce      json
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  GenreResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *gin.Context) {
	g, ok := h.loadGenre(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GenreResponse{Data: toGenre(*g)})
}

// CreateGenre godoc
// @Summary      Create a genre
// @Description  Create a genre. Needs the manage_categories capability. Slug and color are derived when omitted.
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      CreateGenreRequest         true  "Genre to create"
// @Success      201      {object}  GenreResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or invalid parent"
// @Failure      401      {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403      {object}  validation.ErrorResponse   "Not allowed to manage genres"
// @Failure      409      {object}  validation.ErrorResponse   "Slug already taken"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	g := model.Genre{
		Name:                sanitize.Text(req.Name),
		Description:         sanitize.Text(req.Description),
		DescriptionExtended: sanitize.Textarea(req.DescriptionExtended),
		ParentID:            req.ParentID,
	}
	if !requireText(c, "name", g.Name) {
		return
	}

	slug := req.Slug
	if strings.TrimSpace(slug) == "" {
		slug = g.Name
	}
	g.Slug = genre.Slugify(slug)
	if !requireText(c, "slug", g.Slug) {
		return
	}
	g.Color = colorOrDefault(req.Color, g.Slug)

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &g); err != nil {
		h.writeGenreError(c, err, "GENRE_CREATE_FAILED", "failed to create genre")
		return
	}

	created, err := h.repo.FindByID(ctx, g.ID)
	if err != nil {
		writeFailure(c, h.log, err,
			"GENRE_FETCH_FAILED",
			"failed to fetch created genre",
		)
		return
	}

	h.log.Info("genre created", "id", created.ID, "slug", created.Slug, "user", currentUser(c).Login)
	c.JSON(http.StatusCreated, GenreResponse{Data: toGenre(*created)})
}

// UpdateGenre godoc
// @Summary      Update a genre
// @Description  Partially update a genre. Needs the manage_categories capability. "parent_id": 0 moves it to the top level.
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                  true  "Genre ID"
// @Param        payload  body      UpdateGenreRequest   true  "Fields to update"
// @Success      200      {object}  GenreResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID, payload or parent"
// @Failure      401      {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403      {object}  validation.ErrorResponse   "Not allowed to manage genres"
// @Failure      404      {object}  validation.ErrorResponse   "Genre not found"
// @Failure      409      {object}  validation.ErrorResponse   "Slug already taken"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres/{id} [put]
// @Router       /genres/{id} [patch]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	g, ok := h.loadGenre(c)
	if !ok {
		return
	}

	var req UpdateGenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.empty() {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	if req.Name != nil {
		g.Name = sanitize.Text(*req.Name)
		if !requireText(c, "name", g.Name) {
			return
		}
	}
	if req.Slug != nil {
		g.Slug = genre.Slugify(*req.Slug)
		if !requireText(c, "slug", g.Slug) {
			return
		}
	}
	if req.Description != nil {
		g.Description = sanitize.Text(*req.Description)
	}
	if req.DescriptionExtended != nil {
		g.DescriptionExtended = sanitize.Textarea(*req.DescriptionExtended)
	}
	if req.Color != nil {
		g.Color = colorOrDefault(*req.Color, g.Slug)
	}
	if req.ParentID != nil {
		g.ParentID = req.ParentID
		if *req.ParentID == 0 {
			g.ParentID = nil
		}
	}

	ctx := c.Request.Context()

	if err := h.repo.Update(ctx, g); err != nil {
		h.writeGenreError(c, err, "GENRE_UPDATE_FAILED", "failed to update genre")
		return
	}

	updated, err := h.repo.FindByID(ctx, g.ID)
	if err != nil {
		writeFailure(c, h.log, err,
			"GENRE_FETCH_FAILED",
			"failed to fetch updated genre",
		)
		return
	}

	h.log.Info("genre updated", "id", updated.ID, "user", currentUser(c).Login)
	c.JSON(http.StatusOK, GenreResponse{Data: toGenre(*updated)})
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Delete a genre. Its books lose the genre and its children move up to its parent.
// @Tags         genres
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  DeleteGenreResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      401  {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403  {object}  validation.ErrorResponse   "Not allowed to manage genres"
// @Failure      404  {object}  validation.ErrorResponse   "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseGenreID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.writeGenreError(c, err, "GENRE_DELETE_FAILED", "failed to delete genre")
		return
	}

	h.log.Info("genre deleted", "id", id, "user", currentUser(c).Login)
	c.JSON(http.StatusOK, DeleteGenreResponse{
		Data: DeletedGenre{Deleted: true, ID: id},
	})
}

func (h *GenreHandler) loadGenre(c *gin.Context) (*model.Genre, bool) {
	id, ok := parseGenreID(c)
	if !ok {
		return nil, false
	}

	g, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.writeGenreError(c, err, "GENRE_FETCH_FAILED", "failed to fetch genre")
		return nil, false
	}

	return g, true
}

func (h *GenreHandler) writeGenreError(c *gin.Context, err error, code, message string) {
	var derr *domainerrors.Error
	switch {
	case domainerrors.Is(err, domainerrors.ErrNotFound):
		writeError(c, http.StatusNotFound,
			"GENRE_NOT_FOUND",
			"genre not found",
		)
	case domainerrors.Is(err, domainerrors.ErrConflict):
		writeError(c, http.StatusConflict,
			"GENRE_EXISTS",
			"a genre with this slug already exists",
		)
	case domainerrors.Is(err, domainerrors.ErrValidation) && domainerrors.As(err, &derr):
		writeError(c, http.StatusBadRequest,
			"INVALID_PARENT",
			derr.Message,
		)
	default:
		writeFailure(c, h.log, err, code, message)
	}
}

func parseGenreID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_GENRE_ID",
			"invalid genre id",
		)
		return 0, false
	}
	return uint(id), true
}

func colorOrDefault(color, slug string) string {
	if color == "" {
		return genre.ColorFor(slug)
	}
	return strings.ToLower(color)
}

func toGenre(g model.Genre) Genre {
	return Genre{
		ID:                  g.ID,
		Name:                g.Name,
		Slug:                g.Slug,
		Description:         g.Description,
		ParentID:            g.ParentID,
		Count:               g.Count,
		Color:               g.Color,
		DescriptionExtended: g.DescriptionExtended,
	}
}
