package cmd

import (
	"context"
	"log/slog"

	"catalog/cache"
	"catalog/config"
	"catalog/db"
	"catalog/metrics"
	"catalog/service"
)

// BuildDependencies wires stores, services and the optional Redis and
// Elasticsearch backends from configuration. The returned cleanup releases
// backend connections.
func BuildDependencies(cfg config.Config, logger *slog.Logger) (Dependencies, func(), error) {
	cleanup := func() {}

	library := db.NewMemoryLibrary()
	catalog := db.NewMemoryCatalog()
	if cfg.SeedData {
		db.SeedLibrary(library)
		db.SeedCatalog(catalog)
	}

	var index db.BookIndex
	if cfg.ElasticURL != "" {
		client, err := config.SetupElasticSearch(cfg.ElasticURL)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		elasticLibrary := db.NewElasticLibrary(client, cfg.ElasticIndex)
		index = elasticLibrary
		logger.Info("mirroring books to elasticsearch", "url", cfg.ElasticURL, "index", elasticLibrary.IndexName)
	}

	var cacher cache.RequestCacher = cache.CreateMemoryCache(cfg.ActivitySize)
	if cfg.RedisURL != "" {
		client, err := config.SetupRedis(cfg.RedisURL)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		cleanup = func() { client.Close() }
		cacher = cache.CreateRedisCache(client, cfg.ActivitySize)
		logger.Info("caching user activity in redis", "addr", cfg.RedisURL)
	}

	books := service.NewBookService(library, index, logger)

	// The index may still hold books from a previous run.
	if index != nil {
		books.Reindex(context.Background())
	}

	return Dependencies{
		Logger:         logger,
		Books:          books,
		Products:       service.NewProductService(catalog),
		Cacher:         cacher,
		Metrics:        metrics.NewHTTPMetrics(),
		StreamInterval: cfg.StreamInterval,
	}, cleanup, nil
}
