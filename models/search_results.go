package models

// LibraryStats summarises the book collection.
type LibraryStats struct {
	NumberOfBooks   int `json:"number_of_books"`
	NumberOfAuthors int `json:"number_of_authors"`
}

// SearchQuery narrows a book search. Empty fields and nil bounds are ignored.
type SearchQuery struct {
	Title    string
	Author   string
	MinPrice *float64
	MaxPrice *float64
}

func (q SearchQuery) IsEmpty() bool {
	return q.Title == "" && q.Author == "" && q.MinPrice == nil && q.MaxPrice == nil
}
