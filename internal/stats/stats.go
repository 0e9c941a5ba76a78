// Package stats aggregates catalog statistics from book facets.
package stats

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/snnyvrz/bookshelf/internal/repository"
)

const TopAuthorsLimit = 10

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

type Summary struct {
	TotalBooks  int64          `json:"total_books"`
	TotalGenres int64          `json:"total_genres"`
	BooksByYear map[string]int `json:"books_by_year"`
	TopAuthors  []AuthorCount  `json:"top_authors"`
}

// Compute builds the summary. rows must be in ascending id order: authors
// with equal counts keep the order in which they were first seen.
func Compute(rows []repository.BookFacet, totalGenres int64) Summary {
	s := Summary{
		TotalBooks:  int64(len(rows)),
		TotalGenres: totalGenres,
		BooksByYear: make(map[string]int),
		TopAuthors:  []AuthorCount{},
	}

	index := make(map[string]int)
	for _, r := range rows {
		if r.PublishedYear > 0 {
			s.BooksByYear[strconv.Itoa(r.PublishedYear)]++
		}

		author := strings.TrimSpace(r.Author)
		if author == "" {
			continue
		}
		if i, ok := index[author]; ok {
			s.TopAuthors[i].Count++
			continue
		}
		index[author] = len(s.TopAuthors)
		s.TopAuthors = append(s.TopAuthors, AuthorCount{Author: author, Count: 1})
	}

	slices.SortStableFunc(s.TopAuthors, func(a, b AuthorCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(s.TopAuthors) > TopAuthorsLimit {
		s.TopAuthors = s.TopAuthors[:TopAuthorsLimit]
	}

	return s
}
