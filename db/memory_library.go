package db

import (
	"strings"

	"catalog/models"
)

// MemoryLibrary holds books in memory.
type MemoryLibrary struct {
	*MemoryStore[models.Book]
}

func NewMemoryLibrary() *MemoryLibrary {
	return &MemoryLibrary{NewMemoryStore[models.Book]()}
}

func (library *MemoryLibrary) FindByAuthor(author string) []models.Book {
	return library.Filter(func(book models.Book) bool {
		return strings.EqualFold(book.Author, author)
	})
}

func (library *MemoryLibrary) FindByGenre(genre string) []models.Book {
	return library.Filter(func(book models.Book) bool {
		return strings.EqualFold(book.Genre, genre)
	})
}

// Search matches title and author as case-insensitive substrings and price
// against inclusive bounds. Books without a price never satisfy a bound.
func (library *MemoryLibrary) Search(query models.SearchQuery) []models.Book {
	title := strings.ToLower(query.Title)
	author := strings.ToLower(query.Author)

	return library.Filter(func(book models.Book) bool {
		if title != "" && !strings.Contains(strings.ToLower(book.Title), title) {
			return false
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), author) {
			return false
		}
		if query.MinPrice != nil && (book.Price == nil || *book.Price < *query.MinPrice) {
			return false
		}
		if query.MaxPrice != nil && (book.Price == nil || *book.Price > *query.MaxPrice) {
			return false
		}
		return true
	})
}

func (library *MemoryLibrary) Stats() models.LibraryStats {
	books := library.List()

	authors := make(map[string]struct{}, len(books))
	for _, book := range books {
		authors[strings.ToLower(book.Author)] = struct{}{}
	}

	return models.LibraryStats{
		NumberOfBooks:   len(books),
		NumberOfAuthors: len(authors),
	}
}
