package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"catalog/models"
	"github.com/olivere/elastic/v7"
)

const INDEX_NAME = "books"

// Writes wait for the next refresh so a search right after a mutation sees it.
const REFRESH_POLICY = "wait_for"

// BookIndex mirrors the book collection into a search backend.
type BookIndex interface {
	Index(ctx context.Context, book models.Book) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error)
}

type ElasticLibraryManager struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func NewElasticLibrary(client *elastic.Client, indexName string) *ElasticLibraryManager {
	if indexName == "" {
		indexName = INDEX_NAME
	}
	return &ElasticLibraryManager{IndexName: indexName, ElasticClient: client}
}

func (library *ElasticLibraryManager) Index(ctx context.Context, book models.Book) error {
	_, err := library.ElasticClient.Index().
		Index(library.IndexName).
		Id(book.Id).
		BodyJson(book).
		Refresh(REFRESH_POLICY).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("elastic: index book %s: %w", book.Id, err)
	}
	return nil
}

func (library *ElasticLibraryManager) Delete(ctx context.Context, id string) error {
	_, err := library.ElasticClient.
		Delete().
		Index(library.IndexName).
		Id(id).
		Refresh(REFRESH_POLICY).
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("elastic: delete book %s: %w", id, err)
	}
	return nil
}

func (library *ElasticLibraryManager) Clear(ctx context.Context) error {
	_, err := library.ElasticClient.
		DeleteByQuery(library.IndexName).
		Query(elastic.NewMatchAllQuery()).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("elastic: clear index %s: %w", library.IndexName, err)
	}
	return nil
}

func (library *ElasticLibraryManager) Search(ctx context.Context, query models.SearchQuery) ([]models.Book, error) {
	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Pretty(false).
		Size(10000).
		Query(BuildSearchQuery(query)).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("elastic: search books: %w", err)
	}

	books := make([]models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var book models.Book
		if err := json.Unmarshal(hit.Source, &book); err != nil {
			return nil, fmt.Errorf("elastic: decode hit %s: %w", hit.Id, err)
		}
		books = append(books, book)
	}

	return books, nil
}

// BuildSearchQuery translates a SearchQuery into an Elasticsearch bool query.
// Title and author are case-insensitive substring matches on the keyword
// sub-fields, the same semantics as MemoryLibrary.Search.
func BuildSearchQuery(query models.SearchQuery) *elastic.BoolQuery {
	boolQuery := elastic.NewBoolQuery()
	if query.Title != "" {
		boolQuery.Must(containsQuery("title", query.Title))
	}
	if query.Author != "" {
		boolQuery.Must(containsQuery("author", query.Author))
	}

	if query.MinPrice != nil || query.MaxPrice != nil {
		priceRangeQuery := elastic.NewRangeQuery("price")
		if query.MinPrice != nil {
			priceRangeQuery = priceRangeQuery.Gte(*query.MinPrice)
		}
		if query.MaxPrice != nil {
			priceRangeQuery = priceRangeQuery.Lte(*query.MaxPrice)
		}
		boolQuery.Must(priceRangeQuery)
	}

	return boolQuery
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func containsQuery(field string, text string) *elastic.WildcardQuery {
	pattern := "*" + wildcardEscaper.Replace(strings.ToLower(text)) + "*"
	return elastic.NewWildcardQuery(field+".keyword", pattern).CaseInsensitive(true)
}
