package db

import (
	"testing"

	"catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededLibrary(t *testing.T) *MemoryLibrary {
	t.Helper()
	library := NewMemoryLibrary()
	SeedLibrary(library)
	require.Equal(t, 3, library.Len())
	return library
}

func titles(books []models.Book) []string {
	result := make([]string, len(books))
	for i, book := range books {
		result[i] = book.Title
	}
	return result
}

func TestMemoryLibrary_FindByAuthorIgnoresCase(t *testing.T) {
	library := seededLibrary(t)

	assert.Equal(t, []string{"The Great Gatsby"}, titles(library.FindByAuthor("f. scott fitzgerald")))
	assert.Equal(t, []string{"1984"}, titles(library.FindByAuthor("GEORGE ORWELL")))
	assert.Empty(t, library.FindByAuthor("George"))
	assert.NotNil(t, library.FindByAuthor("nobody"))
}

func TestMemoryLibrary_FindByGenre(t *testing.T) {
	library := seededLibrary(t)
	library.Save(models.Book{Title: "Brave New World", Author: "Aldous Huxley", Genre: "dystopian"})

	assert.ElementsMatch(t, []string{"1984", "Brave New World"}, titles(library.FindByGenre("Dystopian")))
	assert.Empty(t, library.FindByGenre("Poetry"))
}

func TestMemoryLibrary_Search(t *testing.T) {
	library := seededLibrary(t)
	library.Save(models.Book{Title: "Unpriced", Author: "Anon"})

	lo, hi := 12.0, 14.0

	tests := []struct {
		name  string
		query models.SearchQuery
		want  []string
	}{
		{"title substring", models.SearchQuery{Title: "great"}, []string{"The Great Gatsby"}},
		{"author substring", models.SearchQuery{Author: "lee"}, []string{"To Kill a Mockingbird"}},
		{"min price", models.SearchQuery{MinPrice: &lo}, []string{"The Great Gatsby", "To Kill a Mockingbird"}},
		{"max price", models.SearchQuery{MaxPrice: &hi}, []string{"To Kill a Mockingbird", "1984"}},
		{"price range", models.SearchQuery{MinPrice: &lo, MaxPrice: &hi}, []string{"To Kill a Mockingbird"}},
		{"no match", models.SearchQuery{Title: "gatsby", Author: "orwell"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(library.Search(tt.query)))
		})
	}
}

func TestMemoryLibrary_StatsCountsDistinctAuthors(t *testing.T) {
	library := seededLibrary(t)
	library.Save(models.Book{Title: "Go Set a Watchman", Author: "HARPER LEE"})

	assert.Equal(t, models.LibraryStats{NumberOfBooks: 4, NumberOfAuthors: 3}, library.Stats())
}

func TestMemoryCatalog_FindByCategory(t *testing.T) {
	catalog := NewMemoryCatalog()
	SeedCatalog(catalog)

	electronics := catalog.FindByCategory("electronics")
	require.Len(t, electronics, 2)
	for _, product := range electronics {
		assert.Equal(t, "Electronics", product.Category)
	}
	assert.Len(t, catalog.FindByCategory("KITCHEN"), 1)
	assert.Empty(t, catalog.FindByCategory("Garden"))
}
