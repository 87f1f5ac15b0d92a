package service

import (
	"catalog/db"
	"catalog/models"
)

type ProductService struct {
	catalog db.CatalogManager
}

func NewProductService(catalog db.CatalogManager) *ProductService {
	return &ProductService{catalog: catalog}
}

func (s *ProductService) FindAll() []models.Product {
	return s.catalog.List()
}

func (s *ProductService) FindById(id string) (models.Product, error) {
	product, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) FindByCategory(category string) []models.Product {
	return s.catalog.FindByCategory(category)
}

func (s *ProductService) Create(product models.Product) models.Product {
	return s.catalog.Save(product)
}

func (s *ProductService) Update(id string, product models.Product) (models.Product, error) {
	if _, ok := s.catalog.Get(id); !ok {
		return models.Product{}, ErrNotFound
	}

	updated, ok := s.catalog.Update(id, product)
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return updated, nil
}

func (s *ProductService) Delete(id string) {
	s.catalog.Delete(id)
}

func (s *ProductService) DeleteAll() {
	s.catalog.Clear()
}
