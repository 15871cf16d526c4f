// Package stream provides a generic, fluent Stream type modelled on
// pipeline-style collection processing, plus collectors for grouping,
// partitioning, counting and joining.
//
// # Overview
//
// The central type is [Stream][T], a wrapper around a slice of T with a
// chainable API:
//
//	top := stream.Of(5, 3, 9, 1, 9, 7).
//	    Filter(func(n int) bool { return n > 2 }).
//	    Sorted(func(a, b int) bool { return a > b }).
//	    Limit(3).
//	    ToSlice() // → [9 9 7]
//
// # Immutability
//
// Every intermediate operation returns a *new* Stream and leaves its receiver
// unchanged, so a Stream can be reused as the source of several pipelines.
// Streams are not lazy: each step runs to completion before returning.
//
// # Type-changing operations
//
// Go methods cannot introduce type parameters, so operations that change the
// element type, or need a comparable or ordered element, are package-level
// functions:
//
//	lengths := stream.Map(words, func(s string) int { return len(s) })
//	byLen   := stream.GroupBy(words, func(s string) int { return len(s) })
//	freq    := stream.Counting(words, func(s string) string { return s })
//	csv     := stream.Joining(words, ",")
//
// Package-level functions: [Map], [FlatMap], [Fold], [SortedBy],
// [SortedByDesc], [Distinct], [GroupBy], [PartitionBy], [Counting], [ToMap],
// [ToMapMerge], [Joining], [Zip], [Flatten], [IndexWhere], [Sum].
//
// # Accepting any sequence
//
// [Sequence] is the read-only half of the Stream API. Accept it where a
// function only inspects items, and use [Collect] to turn one back into a
// Stream.
//
// # Empty input
//
// Terminal operations that need at least one element ([Stream.Min],
// [Stream.Max], [Stream.FindFirst], …) report absence with a boolean instead
// of a magic value. [Stream.FirstOrFail] returns [ErrNoMatchingItems].
package stream
