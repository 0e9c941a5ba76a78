package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/snnyvrz/bookshelf/internal/model"
)

// FlexInt accepts a JSON number or a numeric string and keeps the absolute
// integer part. Empty strings and null decode to 0. Magnitudes above
// MaxFlexInt are rejected.
type FlexInt int

const MaxFlexInt = math.MaxInt32

// MaxPages bounds the page count of a single book.
const MaxPages = 100000

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("expected an integer, got %s", raw)
	}

	v = math.Abs(math.Trunc(v))
	if v > MaxFlexInt {
		return fmt.Errorf("integer %s is out of range", raw)
	}

	*f = FlexInt(v)
	return nil
}

func (f *FlexInt) Int() int {
	if f == nil {
		return 0
	}
	return int(*f)
}

func genreIDs(in []FlexInt) []uint {
	out := make([]uint, 0, len(in))
	for _, v := range in {
		if v > 0 {
			out = append(out, uint(v))
		}
	}
	return out
}

type CreateBookRequest struct {
	Title         string    `json:"title" binding:"notblank,max=255" example:"Dune"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author" binding:"notblank,max=255" example:"Frank Herbert"`
	PublishedYear *FlexInt  `json:"published_year" binding:"omitempty,pubyear" swaggertype:"integer" example:"1965"`
	ISBN          string    `json:"isbn" binding:"max=32" example:"978-0441013593"`
	Pages         *FlexInt  `json:"pages" binding:"omitempty,max=100000" swaggertype:"integer" example:"412"`
	Genres        []FlexInt `json:"genres" swaggertype:"array,integer"`
	FeaturedImage string    `json:"featured_image" binding:"omitempty,url"`
}

// UpdateBookRequest carries only the fields to change. An empty genres list
// removes every genre from the book.
type UpdateBookRequest struct {
	Title         *string    `json:"title" binding:"omitempty,notblank,max=255"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	Author        *string    `json:"author" binding:"omitempty,notblank,max=255"`
	PublishedYear *FlexInt   `json:"published_year" binding:"omitempty,pubyear" swaggertype:"integer"`
	ISBN          *string    `json:"isbn" binding:"omitempty,max=32"`
	Pages         *FlexInt   `json:"pages" binding:"omitempty,max=100000" swaggertype:"integer"`
	Genres        *[]FlexInt `json:"genres" swaggertype:"array,integer"`
	FeaturedImage *string    `json:"featured_image" binding:"omitempty,len=0|url"`
}

func (r UpdateBookRequest) empty() bool {
	return r.Title == nil && r.Content == nil && r.Excerpt == nil &&
		r.Author == nil && r.PublishedYear == nil && r.ISBN == nil &&
		r.Pages == nil && r.Genres == nil && r.FeaturedImage == nil
}

type ListBooksQuery struct {
	Genre   string `form:"genre"`
	Author  string `form:"author"`
	Year    *int   `form:"year" binding:"omitempty,min=0"`
	Search  string `form:"search"`
	Page    *int   `form:"page" binding:"omitempty,min=1"`
	PerPage *int   `form:"per_page" binding:"omitempty,min=1,max=100"`
	OrderBy string `form:"orderby" binding:"omitempty,oneof=date title author year"`
	Order   string `form:"order" binding:"omitempty,sortorder"`
}

type GenreRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type Book struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Excerpt       string          `json:"excerpt"`
	Author        string          `json:"author"`
	PublishedYear int             `json:"published_year"`
	ISBN          string          `json:"isbn"`
	Pages         int             `json:"pages"`
	Genres        []GenreRef      `json:"genres"`
	DateCreated   model.Timestamp `json:"date_created" swaggertype:"string" example:"2025-11-24 10:30:00"`
	DateModified  model.Timestamp `json:"date_modified" swaggertype:"string" example:"2025-11-24 10:30:00"`
	FeaturedImage *string         `json:"featured_image"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListBooksResponse struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type DeletedBook struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

type DeleteBookResponse struct {
	Data DeletedBook `json:"data"`
}
