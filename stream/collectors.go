package stream

// This file contains package-level generic functions for operations that
// change the element type of a Stream, or that need a comparable or ordered
// element. They compose with method chaining:
//
//	names := stream.Map(
//	    stream.From(users).Filter(func(u *User) bool { return u.Age > 18 }),
//	    func(u *User) string { return u.Name },
//	)

import (
	"cmp"
	"strings"

	"github.com/hasbyte1/go-stream-utils/arr"
)

// Number is the set of element types [Sum] accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map applies fn to every item and returns a new Stream[U].
//
//	lengths := stream.Map(stream.Of("a", "abc"), func(s string) int { return len(s) })
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return wrap(arr.Map(s.items, func(item T, _ int) U { return fn(item) }))
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Stream[U].
//
//	words := stream.FlatMap(stream.Of("hello world", "foo"), strings.Fields)
//	// → ["hello", "world", "foo"]
func FlatMap[T, U any](s *Stream[T], fn func(T) []U) *Stream[U] {
	return wrap(arr.FlatMap(s.items, func(item T, _ int) []U { return fn(item) }))
}

// Fold reduces Stream[T] to a single value of type U.
//
//	total := stream.Fold(words, 0, func(acc int, w string) int { return acc + len(w) })
func Fold[T, U any](s *Stream[T], initial U, fn func(U, T) U) U {
	return arr.Reduce(s.items, func(acc U, item T, _ int) U { return fn(acc, item) }, initial)
}

// Sum adds up every item. An empty stream sums to zero.
func Sum[T Number](s *Stream[T]) T {
	var total T
	for _, item := range s.items {
		total += item
	}
	return total
}

// SortedBy returns a new stream stably sorted ascending by the key fn.
func SortedBy[T any, K cmp.Ordered](s *Stream[T], fn func(T) K) *Stream[T] {
	return wrap(arr.SortBy(s.items, fn))
}

// SortedByDesc returns a new stream stably sorted descending by the key fn.
func SortedByDesc[T any, K cmp.Ordered](s *Stream[T], fn func(T) K) *Stream[T] {
	return wrap(arr.SortByDesc(s.items, fn))
}

// Distinct returns a new stream keeping only the first occurrence of every
// value.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return wrap(arr.Distinct(s.items))
}

// GroupBy groups items by the comparable key K extracted by fn. Items keep
// their encounter order inside each group.
//
//	byLen := stream.GroupBy(stream.Of("a", "bb", "c"), func(s string) int { return len(s) })
//	// → map[1:[a c] 2:[bb]]
func GroupBy[T any, K comparable](s *Stream[T], fn func(T) K) map[K][]T {
	return arr.GroupBy(s.items, fn)
}

// PartitionBy splits the stream into items satisfying fn and the rest.
// Both slices are non-nil.
func PartitionBy[T any](s *Stream[T], fn func(T) bool) (matched, rest []T) {
	return arr.Partition(s.items, fn)
}

// Counting counts items by the key fn extracts, remembering the order in
// which keys were first seen.
//
//	freq := stream.Counting(stream.Of("a", "b", "a"), func(s string) string { return s })
//	freq.Count("a") // → 2
func Counting[T any, K comparable](s *Stream[T], fn func(T) K) *Frequencies[K] {
	f := newFrequencies[K](len(s.items))
	for _, item := range s.items {
		f.add(fn(item))
	}
	return f
}

// ToMap builds a map from the key and value functions. When keys collide the
// last item wins.
func ToMap[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V) map[K]V {
	return ToMapMerge(s, key, value, func(_, next V) V { return next })
}

// ToMapMerge builds a map from the key and value functions, resolving key
// collisions with merge(existing, incoming).
func ToMapMerge[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V, merge func(existing, incoming V) V) map[K]V {
	out := make(map[K]V, len(s.items))
	for _, item := range s.items {
		k, v := key(item), value(item)
		if existing, ok := out[k]; ok {
			v = merge(existing, v)
		}
		out[k] = v
	}
	return out
}

// Joining concatenates the items of a string stream with sep between them.
func Joining(s *Stream[string], sep string) string {
	return strings.Join(s.items, sep)
}

// Zip combines two streams element-by-element into pairs, stopping at the
// shorter of the two.
func Zip[A, B any](a *Stream[A], b *Stream[B]) *Stream[arr.Pair[A, B]] {
	return wrap(arr.Zip(a.items, b.items))
}

// Flatten flattens a Stream[[]T] into a Stream[T] (one level only).
func Flatten[T any](s *Stream[[]T]) *Stream[T] {
	return wrap(arr.Flatten(s.items))
}

// IndexWhere returns the positions of the items satisfying fn, ascending.
func IndexWhere[T any](s *Stream[T], fn func(T) bool) []int {
	return arr.Indices(s.items, fn)
}
