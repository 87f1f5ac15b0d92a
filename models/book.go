package models

type Book struct {
	Id          string   `json:"id"`
	Title       string   `json:"title" binding:"notblank,min=1,max=200"`
	Author      string   `json:"author" binding:"notblank"`
	Year        *int     `json:"year" binding:"required,min=1000"`
	Genre       string   `json:"genre,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Available   *bool    `json:"available,omitempty"`
}

func (b Book) GetId() string {
	return b.Id
}

// WithId returns a copy of the book carrying the given id.
func (b Book) WithId(id string) Book {
	b.Id = id
	return b
}
