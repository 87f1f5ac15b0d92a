package cache

import "sync"

// MemoryRequestCacher is the in-process counterpart of RedisRequestCacher,
// used when no Redis address is configured.
type MemoryRequestCacher struct {
	mu        sync.Mutex
	entries   map[string][]string
	MaxNumber int
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{entries: make(map[string][]string), MaxNumber: capacity(maxNumber)}
}

func (cacher *MemoryRequestCacher) Write(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := append([]string{string(value)}, cacher.entries[key]...)
	if limit := capacity(cacher.MaxNumber); len(list) > limit {
		list = list[:limit]
	}
	cacher.entries[key] = list
	return nil
}

func (cacher *MemoryRequestCacher) Read(key string) ([]string, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := cacher.entries[key]
	result := make([]string, len(list))
	copy(result, list)
	return result, nil
}
