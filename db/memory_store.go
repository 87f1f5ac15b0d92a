package db

import (
	"sync"

	"github.com/google/uuid"
)

// Entity is a record the store can key by id.
type Entity[T any] interface {
	GetId() string
	WithId(id string) T
}

// MemoryStore is a mutex-guarded id -> entity map that remembers insertion
// order so listings are stable.
type MemoryStore[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewMemoryStore[T Entity[T]]() *MemoryStore[T] {
	return &MemoryStore[T]{items: make(map[string]T)}
}

func (store *MemoryStore[T]) List() []T {
	store.mu.RLock()
	defer store.mu.RUnlock()

	items := make([]T, 0, len(store.order))
	for _, id := range store.order {
		items = append(items, store.items[id])
	}
	return items
}

// Filter returns the entities, in listing order, for which keep is true.
func (store *MemoryStore[T]) Filter(keep func(T) bool) []T {
	store.mu.RLock()
	defer store.mu.RUnlock()

	items := make([]T, 0)
	for _, id := range store.order {
		if item := store.items[id]; keep(item) {
			items = append(items, item)
		}
	}
	return items
}

func (store *MemoryStore[T]) Get(id string) (T, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	item, ok := store.items[id]
	return item, ok
}

// Save inserts or overwrites the entity, generating an id when it has none.
func (store *MemoryStore[T]) Save(item T) T {
	if item.GetId() == "" {
		item = item.WithId(uuid.NewString())
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.put(item)
	return item
}

// Update overwrites the entity stored under id. Nothing is written and false
// is returned when id is unknown.
func (store *MemoryStore[T]) Update(id string, item T) (T, bool) {
	item = item.WithId(id)

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.items[id]; !ok {
		var zero T
		return zero, false
	}
	store.items[id] = item
	return item, true
}

func (store *MemoryStore[T]) Delete(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.items[id]; !ok {
		return
	}
	delete(store.items, id)
	for i, existing := range store.order {
		if existing == id {
			store.order = append(store.order[:i], store.order[i+1:]...)
			break
		}
	}
}

func (store *MemoryStore[T]) Clear() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.items = make(map[string]T)
	store.order = nil
}

func (store *MemoryStore[T]) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.items)
}

func (store *MemoryStore[T]) put(item T) {
	id := item.GetId()
	if _, exists := store.items[id]; !exists {
		store.order = append(store.order, id)
	}
	store.items[id] = item
}
