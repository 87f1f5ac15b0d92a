package db

import "catalog/models"

// LibraryManager is the book collection as seen by the service layer.
type LibraryManager interface {
	List() []models.Book
	Get(id string) (models.Book, bool)
	Save(book models.Book) models.Book
	Update(id string, book models.Book) (models.Book, bool)
	Delete(id string)
	Clear()
	Len() int
	FindByAuthor(author string) []models.Book
	FindByGenre(genre string) []models.Book
	Search(query models.SearchQuery) []models.Book
	Stats() models.LibraryStats
}

// CatalogManager is the product collection as seen by the service layer.
type CatalogManager interface {
	List() []models.Product
	Get(id string) (models.Product, bool)
	Save(product models.Product) models.Product
	Update(id string, product models.Product) (models.Product, bool)
	Delete(id string)
	Clear()
	Len() int
	FindByCategory(category string) []models.Product
}
