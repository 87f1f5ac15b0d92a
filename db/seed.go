package db

import "catalog/models"

func SeedLibrary(library LibraryManager) {
	books := []models.Book{
		{
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Year:        intPtr(1925),
			Genre:       "Classic",
			Description: "A novel about the American Dream",
			Price:       floatPtr(14.99),
			Available:   boolPtr(true),
		},
		{
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Year:        intPtr(1960),
			Genre:       "Fiction",
			Description: "A novel about racial injustice",
			Price:       floatPtr(12.99),
			Available:   boolPtr(true),
		},
		{
			Title:       "1984",
			Author:      "George Orwell",
			Year:        intPtr(1949),
			Genre:       "Dystopian",
			Description: "A novel about a totalitarian future",
			Price:       floatPtr(11.99),
			Available:   boolPtr(true),
		},
	}

	for _, book := range books {
		library.Save(book)
	}
}

func SeedCatalog(catalog CatalogManager) {
	products := []models.Product{
		{Name: "Laptop", Price: floatPtr(1299.99), Category: "Electronics", InStock: true},
		{Name: "Smartphone", Price: floatPtr(899.99), Category: "Electronics", InStock: true},
		{Name: "Coffee Maker", Price: floatPtr(99.99), Category: "Kitchen", InStock: false},
	}

	for _, product := range products {
		catalog.Save(product)
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
