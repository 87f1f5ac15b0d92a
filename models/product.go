package models

type Product struct {
	Id       string   `json:"id"`
	Name     string   `json:"name" binding:"notblank"`
	Price    *float64 `json:"price" binding:"required,min=0"`
	Category string   `json:"category" binding:"notblank"`
	InStock  bool     `json:"inStock"`
}

func (p Product) GetId() string {
	return p.Id
}

// WithId returns a copy of the product carrying the given id.
func (p Product) WithId(id string) Product {
	p.Id = id
	return p
}
