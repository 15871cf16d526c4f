// Package arr provides standalone generic helpers for plain Go slices:
// filtering, mapping, reordering, windowing and nil counting.
//
// # Slice helpers
//
// Every helper works on a []T directly, with no wrapper type:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	third := arr.EveryNth([]string{"A", "B", "C", "D", "E", "F"}, 3) // → [C F]
//	pairs := arr.Zip([]string{"a", "b"}, []int{1, 2})              // → [(a, 1) (b, 2)]
//
// # Inputs are never modified
//
// All helpers allocate and return a new slice. The only exceptions are
// [Shuffle], [ShuffleWith] and [ReverseInPlace], which reorder the slice they
// are given and return nothing.
//
// # Counts
//
// Helpers taking a count ([Take], [Skip], [LastN], [EveryNth]) never panic on
// out-of-range values: negative counts produce no items (or, for [Skip],
// skip nothing) and counts beyond the length are clamped.
//
// # Higher-level pipelines
//
// The stream package builds a fluent, chainable pipeline on top of these
// helpers.
package arr
