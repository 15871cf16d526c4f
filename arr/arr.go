package arr

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// Every reports whether all elements satisfy fn. It is true for an empty slice.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Indices returns the positions of the elements satisfying fn, in order.
func Indices[T any](items []T, fn func(T) bool) []int {
	out := make([]int, 0)
	for i, item := range items {
		if fn(item) {
			out = append(out, i)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Pairwise applies fn to every adjacent pair (items[i-1], items[i]) and
// returns the len(items)-1 results. Slices shorter than two yield an empty
// slice.
//
//	Pairwise([]int{1, 3, 6, 10}, func(a, b int) int { return b - a }) // → [2 3 4]
func Pairwise[T, U any](items []T, fn func(prev, next T) U) []U {
	if len(items) < 2 {
		return []U{}
	}
	out := make([]U, len(items)-1)
	for i := 1; i < len(items); i++ {
		out[i-1] = fn(items[i-1], items[i])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Distinct returns items with duplicates removed, keeping the first
// occurrence of every value.
func Distinct[T comparable](items []T) []T {
	return DistinctBy(items, func(item T) T { return item })
}

// DistinctBy removes duplicates using the key extracted by fn.
func DistinctBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DistinctReversed returns the distinct elements of items (first occurrence
// kept) in reverse order.
//
//	DistinctReversed([]int{1, 2, 2, 3}) // → [3 2 1]
func DistinctReversed[T comparable](items []T) []T {
	out := Distinct(items)
	ReverseInPlace(out)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most the first n items. A negative n yields an empty slice.
func Take[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Skip returns items without the first n. A negative n skips nothing.
func Skip[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// LastN returns the last n items. A negative n yields an empty slice and an
// n larger than len(items) returns a copy of all of them.
func LastN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return Skip(items, len(items)-n)
}

// TakeWhile returns items from the start while fn returns true.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if !fn(item) {
			break
		}
		out = append(out, item)
	}
	return out
}

// EveryNth returns the items at 1-based positions n, 2n, 3n, … A non-positive
// n yields an empty slice.
//
//	EveryNth([]string{"A", "B", "C", "D", "E", "F"}, 3) // → [C F]
func EveryNth[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, 0, len(items)/n)
	for i := n - 1; i < len(items); i += n {
		out = append(out, items[i])
	}
	return out
}

// Concat returns a new slice holding the elements of every list in order.
func Concat[T any](lists ...[]T) []T {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]T, 0, total)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Flatten flattens one level of nesting.
func Flatten[T any](lists [][]T) []T {
	return Concat(lists...)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ReverseInPlace reverses items in place.
func ReverseInPlace[T any](items []T) {
	slices.Reverse(items)
}

// SwapPairs returns a copy of items with every element at an even index
// swapped with its right-hand neighbour. A trailing unpaired element stays put.
//
//	SwapPairs([]string{"a", "b", "c", "d", "e"}) // → [b a d c e]
func SwapPairs[T any](items []T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and those that
// do not. Both results are non-nil.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// GroupBy groups items by a comparable key K extracted by fn. Items keep
// their relative order inside each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items stably sorted ascending by the key fn.
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(fn(a), fn(b)) })
	return out
}

// SortByDesc returns a copy of items stably sorted descending by the key fn.
// Items with equal keys keep their input order.
func SortByDesc[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(fn(b), fn(a)) })
	return out
}

// Shuffle randomises the order of items in place using the global source.
func Shuffle[T any](items []T) {
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}

// ShuffleWith randomises the order of items in place using r.
func ShuffleWith[T any](items []T, r *rand.Rand) {
	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
