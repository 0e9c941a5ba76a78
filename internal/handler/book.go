package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/bookshelf/internal/auth"
	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/sanitize"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

const (
	defaultPerPage = 10
)

type BookHandler struct {
	repo   repository.BookRepository
	policy auth.Policy
	log    *slog.Logger
}

func NewBookHandler(repo repository.BookRepository, policy auth.Policy, log *slog.Logger) *BookHandler {
	return &BookHandler{repo: repo, policy: policy, log: log}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", middleware.Require(h.policy, auth.ActionCreate), h.CreateBook)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. Text fields are stripped of markup, content keeps safe HTML.
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or unknown genres"
// @Failure      401      {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403      {object}  validation.ErrorResponse   "Not allowed to create books"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		Title:         sanitize.Text(req.Title),
		Content:       sanitize.HTML(req.Content),
		Excerpt:       sanitize.Text(req.Excerpt),
		Author:        sanitize.Text(req.Author),
		PublishedYear: req.PublishedYear.Int(),
		ISBN:          sanitize.Text(req.ISBN),
		Pages:         req.Pages.Int(),
		FeaturedImage: strings.TrimSpace(req.FeaturedImage),
		Status:        model.StatusPublish,
		CreatedBy:     currentUser(c).Login,
	}

	if !requireText(c, "title", book.Title) || !requireText(c, "author", book.Author) {
		return
	}

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book, genreIDs(req.Genres)); err != nil {
		if domainerrors.Is(err, domainerrors.ErrValidation) {
			writeError(c, http.StatusBadRequest,
				"INVALID_GENRES",
				"one or more genres do not exist",
			)
			return
		}

		writeFailure(c, h.log, err,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	created, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeFailure(c, h.log, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch created book",
		)
		return
	}

	h.log.Info("book created", "id", created.ID, "user", book.CreatedBy)
	c.JSON(http.StatusCreated, toBookResponse(*created))
}

// ListBooks godoc
// @Summary      List books
// @Description  List published books with filters, sorting and pagination. Totals are also sent as X-Total-Count and X-Total-Pages headers.
// @Tags         books
// @Produce      json
// @Param        genre     query     string  false  "Genre slug"
// @Param        author    query     string  false  "Case-insensitive author substring"
// @Param        year      query     int     false  "Exact publication year"
// @Param        search    query     string  false  "Case-insensitive search over title and content"
// @Param        page      query     int     false  "Page number"     default(1) minimum(1)
// @Param        per_page  query     int     false  "Items per page"  default(10) minimum(1) maximum(100)
// @Param        orderby   query     string  false  "Sort field"      Enums(date,title,author,year) default(date)
// @Param        order     query     string  false  "Sort direction"  Enums(ASC,DESC) default(DESC)
// @Success      200  {object}  ListBooksResponse
// @Header       200  {integer}  X-Total-Count  "Total matching books"
// @Header       200  {integer}  X-Total-Pages  "Total pages"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q ListBooksQuery
	if !validation.BindAndValidateQuery(c, &q) {
		return
	}

	params := repository.BookListParams{
		Page:    1,
		PerPage: defaultPerPage,
		OrderBy: q.OrderBy,
		Order:   q.Order,
		Genre:   strings.TrimSpace(q.Genre),
		Author:  sanitize.Text(q.Author),
		Search:  sanitize.Text(q.Search),
	}
	if q.Page != nil {
		params.Page = *q.Page
	}
	if q.PerPage != nil {
		params.PerPage = *q.PerPage
	}
	if q.Year != nil && *q.Year > 0 {
		params.Year = q.Year
	}

	result, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeFailure(c, h.log, err,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	totalPages := result.TotalPages(params.PerPage)

	c.Header(HeaderTotalCount, strconv.FormatInt(result.Total, 10))
	c.Header(HeaderTotalPages, strconv.Itoa(totalPages))
	c.JSON(http.StatusOK, toListBooksResponse(result.Books, params.Page, params.PerPage, result.Total, totalPages))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book. Only supplied fields change; "genres": [] removes all genres.
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      401      {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403      {object}  validation.ErrorResponse   "Not allowed to edit this book"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	user := currentUser(c)
	if !h.policy(auth.ActionEdit, book, user) {
		middleware.AbortDenied(c, user)
		return
	}

	var req UpdateBookRequest
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

	if req.Title != nil {
		book.Title = sanitize.Text(*req.Title)
		if !requireText(c, "title", book.Title) {
			return
		}
	}
	if req.Author != nil {
		book.Author = sanitize.Text(*req.Author)
		if !requireText(c, "author", book.Author) {
			return
		}
	}
	if req.Content != nil {
		book.Content = sanitize.HTML(*req.Content)
	}
	if req.Excerpt != nil {
		book.Excerpt = sanitize.Text(*req.Excerpt)
	}
	if req.PublishedYear != nil {
		book.PublishedYear = req.PublishedYear.Int()
	}
	if req.ISBN != nil {
		book.ISBN = sanitize.Text(*req.ISBN)
	}
	if req.Pages != nil {
		book.Pages = req.Pages.Int()
	}
	if req.FeaturedImage != nil {
		book.FeaturedImage = strings.TrimSpace(*req.FeaturedImage)
	}

	var ids []uint
	if req.Genres != nil {
		ids = genreIDs(*req.Genres)
	}

	ctx := c.Request.Context()

	if err := h.repo.Update(ctx, book, ids); err != nil {
		switch {
		case domainerrors.Is(err, domainerrors.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
		case domainerrors.Is(err, domainerrors.ErrValidation):
			writeError(c, http.StatusBadRequest,
				"INVALID_GENRES",
				"one or more genres do not exist",
			)
		default:
			writeFailure(c, h.log, err,
				"BOOK_UPDATE_FAILED",
				"failed to update book",
			)
		}
		return
	}

	updated, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeFailure(c, h.log, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch updated book",
		)
		return
	}

	h.log.Info("book updated", "id", updated.ID, "user", user.Login)
	c.JSON(http.StatusOK, toBookResponse(*updated))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Permanently delete a book and its genre links.
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  DeleteBookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      401  {object}  validation.ErrorResponse   "Missing or invalid token"
// @Failure      403  {object}  validation.ErrorResponse   "Not allowed to delete this book"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	user := currentUser(c)
	if !h.policy(auth.ActionDelete, book, user) {
		middleware.AbortDenied(c, user)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), book.ID); err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeFailure(c, h.log, err,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	h.log.Info("book deleted", "id", book.ID, "user", user.Login)
	c.JSON(http.StatusOK, DeleteBookResponse{
		Data: DeletedBook{Deleted: true, ID: book.ID},
	})
}

// loadBook resolves the :id parameter and writes 400/404/500 itself.
func (h *BookHandler) loadBook(c *gin.Context) (*model.Book, bool) {
	id, ok := parseBookID(c)
	if !ok {
		return nil, false
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return nil, false
		}

		writeFailure(c, h.log, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return nil, false
	}

	return book, true
}

func requireText(c *gin.Context, field, value string) bool {
	if value != "" {
		return true
	}
	validation.AbortField(c, field, "notblank", field+" is required")
	return false
}
