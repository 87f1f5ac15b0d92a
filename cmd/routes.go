package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"catalog/cache"
	"catalog/handlers"
	"catalog/logging"
	"catalog/metrics"
	"catalog/models"
	"catalog/service"
	"github.com/gin-gonic/gin"
)

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Logger         *slog.Logger
	Books          *service.BookService
	Products       *service.ProductService
	Cacher         cache.RequestCacher
	Metrics        *metrics.HTTPMetrics
	StreamInterval time.Duration
}

// SetupRoutes builds the engine. Books are served by a controller that
// registers its own methods; products by a table of handler functions.
func SetupRoutes(deps Dependencies) *gin.Engine {
	models.RegisterValidations()

	routes := gin.New()
	routes.Use(gin.Recovery(), logging.Middleware(deps.Logger), deps.Metrics.Middleware())

	routes.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	routes.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	routes.GET("/activity/:username", handlers.Activity(deps.Cacher))

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(handlers.CacheUserRequest(deps.Cacher, deps.Logger))

		handlers.NewBookController(deps.Books, deps.StreamInterval).Register(cachedRoutes.Group("/books"))

		for _, route := range handlers.ProductRoutes(deps.Products, deps.StreamInterval) {
			cachedRoutes.Handle(route.Method, route.Path, route.Handler)
		}
	}

	return routes
}
