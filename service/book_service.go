package service

import (
	"context"
	"log/slog"

	"catalog/db"
	"catalog/models"
)

// BookService is a pass-through to the library. When an index is attached,
// every mutation is mirrored into it on a best-effort basis.
type BookService struct {
	library db.LibraryManager
	index   db.BookIndex
	logger  *slog.Logger
}

func NewBookService(library db.LibraryManager, index db.BookIndex, logger *slog.Logger) *BookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookService{
		library: library,
		index:   index,
		logger:  logger.With("component", "book-service"),
	}
}

func (s *BookService) FindAll() []models.Book {
	return s.library.List()
}

func (s *BookService) FindById(id string) (models.Book, error) {
	book, ok := s.library.Get(id)
	if !ok {
		return models.Book{}, ErrNotFound
	}
	return book, nil
}

func (s *BookService) FindByAuthor(author string) []models.Book {
	return s.library.FindByAuthor(author)
}

func (s *BookService) FindByGenre(genre string) []models.Book {
	return s.library.FindByGenre(genre)
}

func (s *BookService) Create(ctx context.Context, book models.Book) models.Book {
	saved := s.library.Save(book)
	s.mirror(ctx, "index", func() error { return s.index.Index(ctx, saved) })
	return saved
}

// Update replaces the book stored under id. ErrNotFound is returned, and the
// library left untouched, when id does not exist.
func (s *BookService) Update(ctx context.Context, id string, book models.Book) (models.Book, error) {
	if _, ok := s.library.Get(id); !ok {
		return models.Book{}, ErrNotFound
	}

	updated, ok := s.library.Update(id, book)
	if !ok {
		return models.Book{}, ErrNotFound
	}

	s.mirror(ctx, "index", func() error { return s.index.Index(ctx, updated) })
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id string) {
	s.library.Delete(id)
	s.mirror(ctx, "delete", func() error { return s.index.Delete(ctx, id) })
}

func (s *BookService) DeleteAll(ctx context.Context) {
	s.library.Clear()
	s.mirror(ctx, "clear", func() error { return s.index.Clear(ctx) })
}

// Search asks the index first and falls back to the in-memory library when
// no index is attached or the index fails.
func (s *BookService) Search(ctx context.Context, query models.SearchQuery) []models.Book {
	if s.index != nil {
		books, err := s.index.Search(ctx, query)
		if err == nil {
			return books
		}
		s.logger.Warn("index search failed, using library", "error", err)
	}
	return s.library.Search(query)
}

func (s *BookService) Stats() models.LibraryStats {
	return s.library.Stats()
}

// Reindex replaces the index contents with the current library.
func (s *BookService) Reindex(ctx context.Context) {
	s.mirror(ctx, "clear", func() error { return s.index.Clear(ctx) })
	for _, book := range s.library.List() {
		book := book
		s.mirror(ctx, "index", func() error { return s.index.Index(ctx, book) })
	}
}

func (s *BookService) mirror(ctx context.Context, action string, apply func() error) {
	if s.index == nil {
		return
	}
	if err := apply(); err != nil {
		s.logger.WarnContext(ctx, "index mirror failed", "action", action, "error", err)
	}
}
