package cache

import "errors"

// ErrEmptyKey is returned when a write or read names no key.
var ErrEmptyKey = errors.New("cache: empty key")

// RequestCacher keeps the most recent entries written under a key.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}

// capacity is the number of entries kept per key; at least one.
func capacity(maxNumber int) int {
	if maxNumber < 1 {
		return 1
	}
	return maxNumber
}
