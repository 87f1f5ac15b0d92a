package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"catalog/models"
	"catalog/service"
	"github.com/gin-gonic/gin"
)

// BookController serves /books. Each endpoint is a method; Register binds
// them onto a route group.
type BookController struct {
	books          *service.BookService
	streamInterval time.Duration
}

func NewBookController(books *service.BookService, streamInterval time.Duration) *BookController {
	return &BookController{books: books, streamInterval: streamInterval}
}

func (controller *BookController) Register(group *gin.RouterGroup) {
	group.GET("", controller.GetAllBooks)
	group.GET("/stream", controller.StreamBooks)
	group.GET("/search", controller.SearchBooks)
	group.GET("/stats", controller.Stats)
	group.GET("/author/:author", controller.GetBooksByAuthor)
	group.GET("/genre/:genre", controller.GetBooksByGenre)
	group.GET("/:id", controller.GetBookById)
	group.POST("", controller.CreateBook)
	group.PUT("/:id", controller.UpdateBook)
	group.DELETE("/:id", controller.DeleteBook)
	group.DELETE("", controller.DeleteAllBooks)
}

func (controller *BookController) GetAllBooks(c *gin.Context) {
	c.JSON(http.StatusOK, controller.books.FindAll())
}

func (controller *BookController) GetBookById(c *gin.Context) {
	id := c.Param("id")

	book, err := controller.books.FindById(id)
	if errors.Is(err, service.ErrNotFound) {
		abortNotFound(c, "book", id)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (controller *BookController) GetBooksByAuthor(c *gin.Context) {
	c.JSON(http.StatusOK, controller.books.FindByAuthor(c.Param("author")))
}

func (controller *BookController) GetBooksByGenre(c *gin.Context) {
	c.JSON(http.StatusOK, controller.books.FindByGenre(c.Param("genre")))
}

func (controller *BookController) CreateBook(c *gin.Context) {
	var book models.Book
	if !bindEntity(c, &book) {
		return
	}

	c.JSON(http.StatusCreated, controller.books.Create(c.Request.Context(), book))
}

func (controller *BookController) UpdateBook(c *gin.Context) {
	id := c.Param("id")

	var book models.Book
	if !bindEntity(c, &book) {
		return
	}

	updated, err := controller.books.Update(c.Request.Context(), id, book)
	if errors.Is(err, service.ErrNotFound) {
		abortNotFound(c, "book", id)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (controller *BookController) DeleteBook(c *gin.Context) {
	controller.books.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (controller *BookController) DeleteAllBooks(c *gin.Context) {
	controller.books.DeleteAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (controller *BookController) StreamBooks(c *gin.Context) {
	streamEvents(c, "book", controller.books.FindAll(), controller.streamInterval)
}

func (controller *BookController) SearchBooks(c *gin.Context) {
	query := models.SearchQuery{
		Title:  c.Query("title"),
		Author: c.Query("author"),
	}

	var ok bool
	if query.MinPrice, ok = parsePrice(c, "min_price"); !ok {
		return
	}
	if query.MaxPrice, ok = parsePrice(c, "max_price"); !ok {
		return
	}

	if query.IsEmpty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "at least one query parameter is required for search"})
		return
	}

	c.JSON(http.StatusOK, controller.books.Search(c.Request.Context(), query))
}

func (controller *BookController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, controller.books.Stats())
}

// parsePrice reads an optional numeric query parameter. A malformed value
// aborts the request with 400.
func parsePrice(c *gin.Context, param string) (*float64, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": param + ": must be a number"})
		return nil, false
	}
	return &price, true
}
