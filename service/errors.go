package service

import "errors"

// ErrNotFound reports an unknown identifier. It is an expected outcome, not a
// failure.
var ErrNotFound = errors.New("not found")
