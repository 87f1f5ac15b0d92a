package db

import (
	"strings"

	"catalog/models"
)

// MemoryCatalog holds products in memory.
type MemoryCatalog struct {
	*MemoryStore[models.Product]
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{NewMemoryStore[models.Product]()}
}

func (catalog *MemoryCatalog) FindByCategory(category string) []models.Product {
	return catalog.Filter(func(product models.Product) bool {
		return strings.EqualFold(product.Category, category)
	})
}
