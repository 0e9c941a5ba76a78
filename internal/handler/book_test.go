package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/model"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/testutil"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book, genreIDs []uint) error
	ListFn     func(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error)
	FindByIDFn func(ctx context.Context, id uint) (*model.Book, error)
	UpdateFn   func(ctx context.Context, b *model.Book, genreIDs []uint) error
	DeleteFn   func(ctx context.Context, id uint) error
	FacetsFn   func(ctx context.Context) ([]repository.BookFacet, error)
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book, genreIDs []uint) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b, genreIDs)
	}
	return nil
}

func (f *fakeBookRepo) List(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return repository.BookListResult{}, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, domainerrors.NotFound("book not found")
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book, genreIDs []uint) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b, genreIDs)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Facets(ctx context.Context) ([]repository.BookFacet, error) {
	if f.FacetsFn != nil {
		return f.FacetsFn(ctx)
	}
	return nil, nil
}

var errStore = errors.New("connection reset")

func TestCreateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	scifi := testutil.SeedGenre(t, db, "Science Fiction")

	body := map[string]any{
		"title":          "  <b>Dune</b>  ",
		"author":         "Frank   Herbert",
		"content":        `<p onclick="x()">Arrakis</p><script>alert(1)</script>`,
		"published_year": "1965",
		"pages":          -412,
		"isbn":           "978-0441013593",
		"genres":         []any{scifi.ID, strconv.Itoa(int(scifi.ID))},
	}

	w := doRequest(t, router, http.MethodPost, "/books", authorToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)

	if resp.Data.ID == 0 {
		t.Errorf("expected non-zero ID")
	}
	if resp.Data.Title != "Dune" {
		t.Errorf("expected sanitized title %q, got %q", "Dune", resp.Data.Title)
	}
	if resp.Data.Author != "Frank Herbert" {
		t.Errorf("expected collapsed author, got %q", resp.Data.Author)
	}
	if resp.Data.Content != "<p>Arrakis</p>" {
		t.Errorf("expected sanitized content, got %q", resp.Data.Content)
	}
	if resp.Data.PublishedYear != 1965 || resp.Data.Pages != 412 {
		t.Errorf("expected coerced year/pages 1965/412, got %d/%d", resp.Data.PublishedYear, resp.Data.Pages)
	}
	if len(resp.Data.Genres) != 1 || resp.Data.Genres[0].Slug != "science-fiction" {
		t.Errorf("expected one science-fiction genre, got %+v", resp.Data.Genres)
	}
	if resp.Data.FeaturedImage != nil {
		t.Errorf("expected null featured_image, got %q", *resp.Data.FeaturedImage)
	}
	if resp.Data.DateCreated.IsZero() {
		t.Errorf("expected date_created to be set")
	}

	var stored model.Book
	if err := db.First(&stored, resp.Data.ID).Error; err != nil {
		t.Fatalf("failed to load created book: %v", err)
	}
	if stored.CreatedBy != "au" {
		t.Errorf("expected created_by au, got %q", stored.CreatedBy)
	}
}

func TestCreateBook_ValidationErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	cases := []struct {
		name  string
		body  any
		field string
		code  string
	}{
		{"missing title", map[string]any{"author": "A"}, "title", "VALIDATION_FAILED"},
		{"blank author", map[string]any{"title": "T", "author": "   "}, "author", "VALIDATION_FAILED"},
		{"markup only title", map[string]any{"title": "<b></b>", "author": "A"}, "title", "VALIDATION_FAILED"},
		{"year too old", map[string]any{"title": "T", "author": "A", "published_year": 999}, "published_year", "VALIDATION_FAILED"},
		{"year in future", map[string]any{"title": "T", "author": "A", "published_year": time.Now().Year() + 1}, "published_year", "VALIDATION_FAILED"},
		{"bad image url", map[string]any{"title": "T", "author": "A", "featured_image": "not a url"}, "featured_image", "VALIDATION_FAILED"},
		{"non numeric pages", map[string]any{"title": "T", "author": "A", "pages": "many"}, "", "INVALID_REQUEST"},
		{"pages overflow", map[string]any{"title": "T", "author": "A", "pages": 1e20}, "", "INVALID_REQUEST"},
		{"negative year overflow", map[string]any{"title": "T", "author": "A", "published_year": -1e20}, "", "INVALID_REQUEST"},
		{"pages above limit", map[string]any{"title": "T", "author": "A", "pages": MaxPages + 1}, "pages", "VALIDATION_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/books", adminToken, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}

			resp := decode[validation.ErrorResponse](t, w)
			if resp.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, resp.Code)
			}
			if tc.field != "" && (len(resp.Errors) == 0 || resp.Errors[0].Field != tc.field) {
				t.Fatalf("expected error on field %q, got %+v", tc.field, resp.Errors)
			}
		})
	}
}

func TestCreateBook_UnknownGenres(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := doRequest(t, router, http.MethodPost, "/books", adminToken,
		map[string]any{"title": "T", "author": "A", "genres": []int{77}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "INVALID_GENRES" {
		t.Fatalf("expected INVALID_GENRES, got %s", resp.Code)
	}
}

func TestCreateBook_RequiresCapability(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	body := map[string]any{"title": "T", "author": "A"}

	if w := doRequest(t, router, http.MethodPost, "/books", "", body); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for anonymous, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodPost, "/books", subscriberToken, body); w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for subscriber, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodPost, "/books", "wrong", body); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown token, got %d", w.Code)
	}
}

func TestCreateBook_StoreFailure(t *testing.T) {
	repo := &fakeBookRepo{
		CreateFn: func(ctx context.Context, b *model.Book, genreIDs []uint) error {
			return domainerrors.Wrap(errStore, domainerrors.CodeInternal, "failed to create book")
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodPost, "/books", adminToken, map[string]any{"title": "T", "author": "A"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "BOOK_CREATE_FAILED" {
		t.Fatalf("expected BOOK_CREATE_FAILED, got %s", resp.Code)
	}
	if resp.Message != "failed to create book" {
		t.Fatalf("expected the cause to stay hidden, got %q", resp.Message)
	}
}

func TestListBooks_PaginationAndHeaders(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	base := time.Now().Add(-time.Hour)
	for i := range 7 {
		testutil.SeedBook(t, db, model.Book{
			Title:     "Book " + strconv.Itoa(i),
			Author:    "Author",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	w := doRequest(t, router, http.MethodGet, "/books?per_page=3&page=3", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	if got := w.Header().Get(HeaderTotalCount); got != "7" {
		t.Errorf("expected %s=7, got %q", HeaderTotalCount, got)
	}
	if got := w.Header().Get(HeaderTotalPages); got != "3" {
		t.Errorf("expected %s=3, got %q", HeaderTotalPages, got)
	}

	resp := decode[ListBooksResponse](t, w)
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 book on the last page, got %d", len(resp.Data))
	}
	if resp.Data[0].Title != "Book 0" {
		t.Errorf("expected oldest book last, got %q", resp.Data[0].Title)
	}
	want := Pagination{Page: 3, PerPage: 3, Total: 7, TotalPages: 3}
	if resp.Pagination != want {
		t.Errorf("expected pagination %+v, got %+v", want, resp.Pagination)
	}
}

func TestListBooks_Defaults(t *testing.T) {
	var got repository.BookListParams
	repo := &fakeBookRepo{
		ListFn: func(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
			got = params
			return repository.BookListResult{}, nil
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodGet, "/books?year=0&author=%3Cb%3EKing%3C%2Fb%3E", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	if got.Page != 1 || got.PerPage != 10 {
		t.Errorf("expected page=1 per_page=10, got %d/%d", got.Page, got.PerPage)
	}
	if got.Year != nil {
		t.Errorf("expected year=0 to mean no filter, got %d", *got.Year)
	}
	if got.Author != "King" {
		t.Errorf("expected sanitized author filter, got %q", got.Author)
	}

	resp := decode[ListBooksResponse](t, w)
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty data array, got %v", resp.Data)
	}
	if resp.Pagination.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", resp.Pagination.TotalPages)
	}
}

func TestListBooks_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	horror := testutil.SeedGenre(t, db, "Horror")

	testutil.SeedBook(t, db, model.Book{Title: "It", Author: "Stephen King", PublishedYear: 1986}, horror)
	testutil.SeedBook(t, db, model.Book{Title: "Carrie", Author: "Stephen King", PublishedYear: 1974}, horror)
	testutil.SeedBook(t, db, model.Book{Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965})

	cases := []struct {
		query string
		total int64
	}{
		{"?year=1974", 1},
		{"?author=KING", 2},
		{"?genre=horror&orderby=year&order=asc", 2},
		{"?search=dun", 1},
		{"?author=king&year=1965", 0},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, "/books"+tc.query, "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
			}
			resp := decode[ListBooksResponse](t, w)
			if resp.Pagination.Total != tc.total || int64(len(resp.Data)) != tc.total {
				t.Fatalf("expected %d books, got total=%d len=%d", tc.total, resp.Pagination.Total, len(resp.Data))
			}
		})
	}
}

func TestListBooks_InvalidQuery(t *testing.T) {
	router := setupTestRouterWithRepos(t, &fakeBookRepo{}, nil)

	for _, q := range []string{"?per_page=101", "?per_page=0", "?page=0", "?orderby=pages", "?order=up", "?page=abc"} {
		w := doRequest(t, router, http.MethodGet, "/books"+q, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", q, w.Code)
		}
	}
}

func TestListBooks_StoreFailure(t *testing.T) {
	repo := &fakeBookRepo{
		ListFn: func(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
			return repository.BookListResult{}, errStore
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodGet, "/books", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "BOOK_LIST_FAILED" {
		t.Fatalf("expected BOOK_LIST_FAILED, got %s", resp.Code)
	}
}

func TestGetBookByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	book := testutil.SeedBook(t, db, model.Book{Title: "Dune", Author: "Frank Herbert", FeaturedImage: "https://img.example/dune.jpg"})

	w := doRequest(t, router, http.MethodGet, "/books/"+strconv.Itoa(int(book.ID)), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	resp := decode[BookResponse](t, w)
	if resp.Data.FeaturedImage == nil || *resp.Data.FeaturedImage != "https://img.example/dune.jpg" {
		t.Errorf("unexpected featured_image: %v", resp.Data.FeaturedImage)
	}
	if resp.Data.Genres == nil {
		t.Errorf("expected genres to be an empty array, not null")
	}

	for path, status := range map[string]int{
		"/books/9999": http.StatusNotFound,
		"/books/abc":  http.StatusBadRequest,
		"/books/0":    http.StatusBadRequest,
		"/books/-3":   http.StatusBadRequest,
	} {
		if w := doRequest(t, router, http.MethodGet, path, "", nil); w.Code != status {
			t.Errorf("%s: expected status %d, got %d", path, status, w.Code)
		}
	}
}

func TestGetBookByID_FetchFailure(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return nil, errStore
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodGet, "/books/1", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

func TestUpdateBook_PartialUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	fantasy := testutil.SeedGenre(t, db, "Fantasy")
	book := testutil.SeedBook(t, db, model.Book{
		Title: "The Hobbit", Author: "Tolkien", PublishedYear: 1937, Pages: 310, Content: "<p>Bilbo</p>",
	}, fantasy)
	path := "/books/" + strconv.Itoa(int(book.ID))

	w := doRequest(t, router, http.MethodPatch, path, editorToken, map[string]any{"pages": 320})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[BookResponse](t, w)
	if resp.Data.Pages != 320 {
		t.Errorf("expected pages 320, got %d", resp.Data.Pages)
	}
	if resp.Data.Title != "The Hobbit" || resp.Data.Author != "Tolkien" ||
		resp.Data.PublishedYear != 1937 || resp.Data.Content != "<p>Bilbo</p>" {
		t.Errorf("expected other fields unchanged, got %+v", resp.Data)
	}
	if len(resp.Data.Genres) != 1 {
		t.Errorf("expected genres unchanged, got %+v", resp.Data.Genres)
	}

	w = doRequest(t, router, http.MethodPut, path, editorToken, `{"genres": []}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[BookResponse](t, w); len(resp.Data.Genres) != 0 {
		t.Errorf("expected genres cleared, got %+v", resp.Data.Genres)
	}
}

func TestUpdateBook_Errors(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	book := testutil.SeedBook(t, db, model.Book{Title: "Dune", Author: "Frank Herbert", CreatedBy: "someone"})
	path := "/books/" + strconv.Itoa(int(book.ID))

	cases := []struct {
		name   string
		path   string
		token  string
		body   any
		status int
		code   string
	}{
		{"missing book is checked before permissions", "/books/9999", "", map[string]any{"title": "x"}, http.StatusNotFound, "BOOK_NOT_FOUND"},
		{"anonymous", path, "", map[string]any{"title": "x"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"author editing someone else's book", path, authorToken, map[string]any{"title": "x"}, http.StatusForbidden, "FORBIDDEN"},
		{"empty payload", path, editorToken, map[string]any{}, http.StatusBadRequest, "NO_FIELDS_TO_UPDATE"},
		{"blank title", path, editorToken, map[string]any{"title": " "}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown genre", path, editorToken, map[string]any{"genres": []int{404}}, http.StatusBadRequest, "INVALID_GENRES"},
		{"invalid id", "/books/x", editorToken, map[string]any{"title": "x"}, http.StatusBadRequest, "INVALID_BOOK_ID"},
		{"pages overflow", path, editorToken, map[string]any{"pages": 1e20}, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPut, tc.path, tc.token, tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d, body=%s", tc.status, w.Code, w.Body.String())
			}
			if resp := decode[validation.ErrorResponse](t, w); resp.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, resp.Code)
			}
		})
	}
}

func TestUpdateBook_AuthorEditsOwnBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	book := testutil.SeedBook(t, db, model.Book{Title: "Draft title", Author: "au", CreatedBy: "au"})

	w := doRequest(t, router, http.MethodPatch, "/books/"+strconv.Itoa(int(book.ID)), authorToken,
		map[string]any{"title": "Final title", "featured_image": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[BookResponse](t, w); resp.Data.Title != "Final title" {
		t.Fatalf("expected title to change, got %q", resp.Data.Title)
	}
}

func TestUpdateBook_StoreFailure(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return &model.Book{ID: id, Title: "T", Author: "A"}, nil
		},
		UpdateFn: func(ctx context.Context, b *model.Book, genreIDs []uint) error {
			return errStore
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodPatch, "/books/1", adminToken, map[string]any{"title": "New"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "BOOK_UPDATE_FAILED" {
		t.Fatalf("expected BOOK_UPDATE_FAILED, got %s", resp.Code)
	}
}

func TestUpdateBook_StatusFollowsDomainError(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return &model.Book{ID: id, Title: "T", Author: "A"}, nil
		},
		UpdateFn: func(ctx context.Context, b *model.Book, genreIDs []uint) error {
			return domainerrors.Wrap(errStore, domainerrors.CodeConflict, "record already exists")
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodPatch, "/books/1", adminToken, map[string]any{"title": "New"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "BOOK_UPDATE_FAILED" {
		t.Fatalf("expected BOOK_UPDATE_FAILED, got %s", resp.Code)
	}
}

func TestDeleteBook_ThenGetIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	book := testutil.SeedBook(t, db, model.Book{Title: "Dune", Author: "Frank Herbert"})
	path := "/books/" + strconv.Itoa(int(book.ID))

	w := doRequest(t, router, http.MethodDelete, path, adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[DeleteBookResponse](t, w)
	if !resp.Data.Deleted || resp.Data.ID != book.ID {
		t.Fatalf("unexpected delete response: %+v", resp.Data)
	}

	if w := doRequest(t, router, http.MethodGet, path, "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodDelete, path, adminToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", w.Code)
	}
}

func TestDeleteBook_Permissions(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	book := testutil.SeedBook(t, db, model.Book{Title: "Dune", Author: "Frank Herbert", CreatedBy: "ana"})
	path := "/books/" + strconv.Itoa(int(book.ID))

	if w := doRequest(t, router, http.MethodDelete, path, subscriberToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for subscriber, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodDelete, path, authorToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for another author, got %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodDelete, path, editorToken, nil); w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for editor, got %d", w.Code)
	}
}

func TestDeleteBook_StoreFailure(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return &model.Book{ID: id}, nil
		},
		DeleteFn: func(ctx context.Context, id uint) error {
			return errStore
		},
	}
	router := setupTestRouterWithRepos(t, repo, nil)

	w := doRequest(t, router, http.MethodDelete, "/books/5", adminToken, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if resp := decode[validation.ErrorResponse](t, w); resp.Code != "BOOK_DELETE_FAILED" {
		t.Fatalf("expected BOOK_DELETE_FAILED, got %s", resp.Code)
	}
}
