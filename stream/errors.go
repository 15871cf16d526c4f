package stream

import "errors"

// Sentinel errors returned by Stream operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("stream: no items match the given condition")
)
