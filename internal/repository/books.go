package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/model"
)

const (
	OrderByDate   = "date"
	OrderByTitle  = "title"
	OrderByAuthor = "author"
	OrderByYear   = "year"
)

var orderColumns = map[string]string{
	OrderByDate:   "books.created_at",
	OrderByTitle:  "books.title",
	OrderByAuthor: "books.author",
	OrderByYear:   "books.published_year",
}

type BookListParams struct {
	Page    int
	PerPage int
	OrderBy string
	Order   string

	Genre  string
	Author string
	Year   *int
	Search string
}

type BookListResult struct {
	Books []model.Book
	Total int64
}

// TotalPages is ceil(Total / perPage).
func (r BookListResult) TotalPages(perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((r.Total + int64(perPage) - 1) / int64(perPage))
}

// BookFacet is the slice of a book the stats aggregator needs.
type BookFacet struct {
	ID            uint
	Author        string
	PublishedYear int
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book, genreIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params BookListParams) (BookListResult, error)
	// Update writes every column of book. A nil genreIDs keeps the current
	// genres; a non-nil slice, even empty, replaces them.
	Update(ctx context.Context, book *model.Book, genreIDs []uint) error
	Delete(ctx context.Context, id uint) error
	// Facets returns one row per published book, ordered by id.
	Facets(ctx context.Context) ([]BookFacet, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book, genreIDs []uint) error {
	if book.Status == "" {
		book.Status = model.StatusPublish
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := loadGenres(tx, genreIDs)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(book).Error; err != nil {
			return err
		}

		if len(genres) > 0 {
			if err := tx.Model(book).Association("Genres").Append(genres); err != nil {
				return err
			}
		}
		book.Genres = genres
		return nil
	})

	return classify(err, "failed to create book")
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Genres", orderGenres).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, classify(err, "book not found")
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) (BookListResult, error) {
	var total int64
	if err := r.filtered(ctx, params).Count(&total).Error; err != nil {
		return BookListResult{}, classify(err, "failed to count books")
	}

	page := max(params.Page, 1)
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 10
	}

	column, ok := orderColumns[params.OrderBy]
	if !ok {
		column = orderColumns[OrderByDate]
	}
	direction := "DESC"
	if strings.EqualFold(params.Order, "asc") {
		direction = "ASC"
	}

	var books []model.Book
	if err := r.filtered(ctx, params).
		Preload("Genres", orderGenres).
		Order(column + " " + direction).
		Order("books.id " + direction).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&books).Error; err != nil {

		return BookListResult{}, classify(err, "failed to list books")
	}

	return BookListResult{Books: books, Total: total}, nil
}

func (r *GormBookRepository) filtered(ctx context.Context, p BookListParams) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("books.status = ?", model.StatusPublish)

	if p.Genre != "" {
		sub := r.db.Table("book_genres").
			Select("book_genres.book_id").
			Joins("JOIN genres ON genres.id = book_genres.genre_id").
			Where("genres.slug = ?", p.Genre)
		q = q.Where("books.id IN (?)", sub)
	}

	if p.Author != "" {
		q = q.Where(`LOWER(books.author) LIKE ? ESCAPE '\'`, containsPattern(p.Author))
	}

	if p.Year != nil {
		q = q.Where("books.published_year = ?", *p.Year)
	}

	if p.Search != "" {
		pattern := containsPattern(p.Search)
		q = q.Where(
			`(LOWER(books.title) LIKE ? ESCAPE '\' OR LOWER(books.content) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}

	return q
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book, genreIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Book{}).
			Where("id = ?", book.ID).
			Updates(map[string]any{
				"title":          book.Title,
				"content":        book.Content,
				"excerpt":        book.Excerpt,
				"author":         book.Author,
				"published_year": book.PublishedYear,
				"isbn":           book.ISBN,
				"pages":          book.Pages,
				"featured_image": book.FeaturedImage,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainerrors.NotFound("book not found")
		}

		if genreIDs == nil {
			return nil
		}

		genres, err := loadGenres(tx, genreIDs)
		if err != nil {
			return err
		}

		assoc := tx.Model(&model.Book{ID: book.ID}).Association("Genres")
		if len(genres) == 0 {
			err = assoc.Clear()
		} else {
			err = assoc.Replace(genres)
		}
		if err != nil {
			return err
		}
		book.Genres = genres
		return nil
	})

	return classify(err, "failed to update book")
}

func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Book{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&model.Book{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.NotFound("book not found")
		}
		return nil
	})

	return classify(err, "failed to delete book")
}

// Facets returns published books in ascending id order.
func (r *GormBookRepository) Facets(ctx context.Context) ([]BookFacet, error) {
	var rows []BookFacet
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select("id, author, published_year").
		Where("status = ?", model.StatusPublish).
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err, "failed to read books")
	}
	return rows, nil
}

// loadGenres resolves ids to genres and rejects unknown ones.
func loadGenres(tx *gorm.DB, ids []uint) ([]model.Genre, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []model.Genre{}, nil
	}

	var genres []model.Genre
	if err := tx.Where("id IN ?", ids).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}

	if len(genres) != len(ids) {
		missing := make([]uint, 0, len(ids))
		for _, id := range ids {
			if !slices.ContainsFunc(genres, func(g model.Genre) bool { return g.ID == id }) {
				missing = append(missing, id)
			}
		}
		return nil, domainerrors.Validationf("unknown genre ids: %v", missing).
			WithDetails(map[string]any{"genres": missing})
	}

	return genres, nil
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func orderGenres(db *gorm.DB) *gorm.DB {
	return db.Order("genres.name ASC")
}

// containsPattern builds a lower-cased LIKE pattern matching s anywhere,
// with LIKE wildcards in s escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return fmt.Sprintf("%%%s%%", r.Replace(strings.ToLower(s)))
}
