package stream

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-stream-utils/arr"
)

// Stream is a generic, immutable-by-default pipeline over a slice of T.
//
// Every intermediate operation returns a *new* Stream, leaving the receiver
// unchanged.
//
// # Creating a stream
//
//	s := stream.Of(1, 2, 3, 4, 5)
//	s := stream.From([]string{"a", "b", "c"})
//	s := stream.Empty[int]()
//
// # Method chaining
//
//	result := stream.Of(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Skip(1).
//	    ToSlice() // → [4 6]
type Stream[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Stream from a variadic list of items (copied).
func Of[T any](items ...T) *Stream[T] {
	return From(items)
}

// From creates a Stream from a slice (the slice is copied).
func From[T any](items []T) *Stream[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Stream[T]{items: dst}
}

// Empty creates an empty Stream of type T.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{items: []T{}}
}

// wrap adopts items without copying. Only for slices freshly allocated by
// this package or by arr.
func wrap[T any](items []T) *Stream[T] {
	return &Stream[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying items. It never returns nil.
func (s *Stream[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of items.
func (s *Stream[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the stream holds no items.
func (s *Stream[T]) IsEmpty() bool { return len(s.items) == 0 }

// ToJSON serialises the items to a JSON array.
func (s *Stream[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the items.
// It implements [fmt.Stringer].
func (s *Stream[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn for every item in order.
func (s *Stream[T]) ForEach(fn func(T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// Peek calls fn for every item and returns s unchanged for further chaining.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	s.ForEach(fn)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & matching
// ─────────────────────────────────────────────────────────────────────────────

// FindFirst returns the first item, optionally matching fns[0].
// Returns the zero value and false when the stream is empty or no item
// satisfies the predicate.
func (s *Stream[T]) FindFirst(fns ...func(T) bool) (T, bool) {
	return arr.First(s.items, fns...)
}

// FindLast returns the last item, optionally matching fns[0].
func (s *Stream[T]) FindLast(fns ...func(T) bool) (T, bool) {
	return arr.Last(s.items, fns...)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (s *Stream[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := s.FindFirst(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// AnyMatch reports whether at least one item satisfies fn.
func (s *Stream[T]) AnyMatch(fn func(T) bool) bool {
	return arr.Contains(s.items, fn)
}

// AllMatch reports whether every item satisfies fn. True for an empty stream.
func (s *Stream[T]) AllMatch(fn func(T) bool) bool {
	return arr.Every(s.items, fn)
}

// NoneMatch reports whether no item satisfies fn. True for an empty stream.
func (s *Stream[T]) NoneMatch(fn func(T) bool) bool {
	return !s.AnyMatch(fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Intermediate operations (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new stream with only the items for which fn returns true.
func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T] {
	return wrap(arr.Filter(s.items, func(item T, _ int) bool { return fn(item) }))
}

// Reject returns a new stream without the items for which fn returns true.
// It is the complement of [Stream.Filter].
func (s *Stream[T]) Reject(fn func(T) bool) *Stream[T] {
	return s.Filter(func(item T) bool { return !fn(item) })
}

// Sorted returns a new stream sorted by less. The sort is stable.
func (s *Stream[T]) Sorted(less func(a, b T) bool) *Stream[T] {
	return wrap(arr.Sort(s.items, less))
}

// Reverse returns a new stream with items in reverse order.
func (s *Stream[T]) Reverse() *Stream[T] {
	return wrap(arr.Reverse(s.items))
}

// Limit returns a new stream with at most the first n items.
// A negative n yields an empty stream.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	return wrap(arr.Take(s.items, n))
}

// Skip returns a new stream without the first n items.
// A negative n skips nothing.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	return wrap(arr.Skip(s.items, n))
}

// TakeWhile returns items from the start while fn returns true.
func (s *Stream[T]) TakeWhile(fn func(T) bool) *Stream[T] {
	return wrap(arr.TakeWhile(s.items, fn))
}

// Concat returns a new stream with the items of other appended.
func (s *Stream[T]) Concat(other *Stream[T]) *Stream[T] {
	return wrap(arr.Concat(s.items, other.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the items into a single value of type T, starting at initial.
//
// For reductions that change the type use the package-level [Fold].
func (s *Stream[T]) Reduce(fn func(acc, item T) T, initial T) T {
	result := initial
	for _, item := range s.items {
		result = fn(result, item)
	}
	return result
}

// Min returns the smallest item according to less. When several items are
// equally small the first one wins. Returns false for an empty stream.
func (s *Stream[T]) Min(less func(a, b T) bool) (T, bool) {
	return s.Max(func(a, b T) bool { return less(b, a) })
}

// Max returns the largest item according to less. When several items are
// equally large the first one wins. Returns false for an empty stream.
func (s *Stream[T]) Max(less func(a, b T) bool) (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	best := s.items[0]
	for _, item := range s.items[1:] {
		if less(best, item) {
			best = item
		}
	}
	return best, true
}
