package handlers

import (
	"errors"
	"net/http"
	"time"

	"catalog/models"
	"catalog/service"
	"github.com/gin-gonic/gin"
)

// Route is one entry of a functional routing table.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// ProductRoutes is the routing table for /products, built from plain handler
// functions closed over the service.
func ProductRoutes(products *service.ProductService, streamInterval time.Duration) []Route {
	return []Route{
		{http.MethodGet, "/products", GetAllProducts(products)},
		{http.MethodGet, "/products/stream", StreamProducts(products, streamInterval)},
		{http.MethodGet, "/products/category/:category", GetProductsByCategory(products)},
		{http.MethodGet, "/products/:id", GetProductById(products)},
		{http.MethodPost, "/products", CreateProduct(products)},
		{http.MethodPut, "/products/:id", UpdateProduct(products)},
		{http.MethodDelete, "/products/:id", DeleteProduct(products)},
		{http.MethodDelete, "/products", DeleteAllProducts(products)},
	}
}

func GetAllProducts(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.FindAll())
	}
}

func GetProductById(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, err := products.FindById(id)
		if errors.Is(err, service.ErrNotFound) {
			abortNotFound(c, "product", id)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func GetProductsByCategory(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.FindByCategory(c.Param("category")))
	}
}

func CreateProduct(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if !bindEntity(c, &product) {
			return
		}

		created := products.Create(product)
		c.Header("Location", "/products/"+created.Id)
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateProduct(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if !bindEntity(c, &product) {
			return
		}

		updated, err := products.Update(id, product)
		if errors.Is(err, service.ErrNotFound) {
			abortNotFound(c, "product", id)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProduct(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products.Delete(c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

func DeleteAllProducts(products *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products.DeleteAll()
		c.Status(http.StatusNoContent)
	}
}

func StreamProducts(products *service.ProductService, streamInterval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		streamEvents(c, "product", products.FindAll(), streamInterval)
	}
}
