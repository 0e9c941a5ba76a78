package repository

import (
	"context"

	"gorm.io/gorm"

	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
	"github.com/snnyvrz/bookshelf/internal/genre"
	"github.com/snnyvrz/bookshelf/internal/model"
)

type GenreRepository interface {
	// List returns every genre, empty ones included, ordered by name with
	// the number of published books attached.
	List(ctx context.Context) ([]model.Genre, error)
	FindByID(ctx context.Context, id uint) (*model.Genre, error)
	Count(ctx context.Context) (int64, error)
	// Create and Update reject a slug held by another genre with a conflict
	// error and a missing or cyclic parent with a validation error.
	Create(ctx context.Context, g *model.Genre) error
	Update(ctx context.Context, g *model.Genre) error
	// Delete unlinks the genre from its books and hands its children to its
	// own parent.
	Delete(ctx context.Context, id uint) error
	// EnsureSeeds creates seeds when no genre exists yet and returns what it created.
	EnsureSeeds(ctx context.Context, seeds []genre.Seed) ([]model.Genre, error)
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Genre{}).
		Select("genres.*, COUNT(books.id) AS count").
		Joins("LEFT JOIN book_genres ON book_genres.genre_id = genres.id").
		Joins("LEFT JOIN books ON books.id = book_genres.book_id AND books.status = ?", model.StatusPublish).
		Group("genres.id")
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	err := r.withCounts(ctx).
		Order("genres.name ASC").
		Order("genres.id ASC").
		Find(&genres).Error
	if err != nil {
		return nil, classify(err, "failed to list genres")
	}
	return genres, nil
}

func (r *GormGenreRepository) FindByID(ctx context.Context, id uint) (*model.Genre, error) {
	var g model.Genre
	err := r.withCounts(ctx).
		Where("genres.id = ?", id).
		Take(&g).Error
	if err != nil {
		return nil, classify(err, "genre not found")
	}
	return &g, nil
}

func (r *GormGenreRepository) Create(ctx context.Context, g *model.Genre) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSlugFree(tx, g.Slug, 0); err != nil {
			return err
		}
		if err := checkParent(tx, 0, g.ParentID); err != nil {
			return err
		}
		return tx.Omit("Parent").Create(g).Error
	})

	return classify(err, "failed to create genre")
}

func (r *GormGenreRepository) Update(ctx context.Context, g *model.Genre) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Genre{}).Where("id = ?", g.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			return domainerrors.NotFound("genre not found")
		}

		if err := checkSlugFree(tx, g.Slug, g.ID); err != nil {
			return err
		}
		if err := checkParent(tx, g.ID, g.ParentID); err != nil {
			return err
		}

		return tx.Model(&model.Genre{}).
			Where("id = ?", g.ID).
			Updates(map[string]any{
				"name":                 g.Name,
				"slug":                 g.Slug,
				"description":          g.Description,
				"color":                g.Color,
				"description_extended": g.DescriptionExtended,
				"parent_id":            g.ParentID,
			}).Error
	})

	return classify(err, "failed to update genre")
}

func (r *GormGenreRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g model.Genre
		if err := tx.Take(&g, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM book_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}

		err := tx.Model(&model.Genre{}).
			Where("parent_id = ?", id).
			Update("parent_id", g.ParentID).Error
		if err != nil {
			return err
		}

		return tx.Delete(&model.Genre{}, "id = ?", id).Error
	})

	return classify(err, "genre not found")
}

func (r *GormGenreRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Genre{}).Count(&total).Error
	return total, classify(err, "failed to count genres")
}

func (r *GormGenreRepository) EnsureSeeds(ctx context.Context, seeds []genre.Seed) ([]model.Genre, error) {
	var created []model.Genre

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Genre{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		for _, s := range seeds {
			slug := genre.Slugify(s.Name)
			g := model.Genre{
				Name:        s.Name,
				Slug:        slug,
				Description: s.Description,
				Color:       genre.ColorFor(slug),
			}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
			created = append(created, g)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "failed to create genres")
	}

	return created, nil
}

// maxGenreDepth bounds the ancestor walk in checkParent.
const maxGenreDepth = 64

func checkSlugFree(tx *gorm.DB, slug string, self uint) error {
	var taken int64
	err := tx.Model(&model.Genre{}).
		Where("slug = ? AND id <> ?", slug, self).
		Count(&taken).Error
	if err != nil {
		return err
	}
	if taken > 0 {
		return domainerrors.Wrap(domainerrors.ErrConflict, domainerrors.CodeConflict, "a genre with this slug already exists")
	}
	return nil
}

// checkParent rejects a parent that does not exist, or one that is self or
// one of self's descendants. A self of 0 means a genre not stored yet.
func checkParent(tx *gorm.DB, self uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}

	cur := parentID
	for depth := 0; cur != nil; depth++ {
		if *cur == self || depth > maxGenreDepth {
			return domainerrors.Validationf("parent genre %d would create a cycle", *parentID)
		}

		var node model.Genre
		err := tx.Select("id", "parent_id").Take(&node, "id = ?", *cur).Error
		if err != nil {
			if domainerrors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.Validationf("parent genre %d does not exist", *parentID)
			}
			return err
		}
		if depth == 0 && self == 0 {
			return nil
		}
		cur = node.ParentID
	}
	return nil
}
