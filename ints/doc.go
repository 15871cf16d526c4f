// Package ints implements operations over sequences of integers:
// aggregation, filtering, mapping, grouping, numeric predicates and a
// configurable random top-K sampler.
//
// Aggregations over an empty slice return an identity or a documented
// fallback: [Sum], [Range] and [FirstOrZero] return 0, [Product] and
// [ProductOfEvens] return 1, [Average] returns 0.0. [Min] and [Max] return
// the NO-DATA sentinels [NoDataMin] and [NoDataMax]; callers that need to
// tell "no data" apart from a real extreme should check the length first or
// use stream.Stream.Min / Max, which report presence explicitly.
//
// Arithmetic follows Go's fixed-width int semantics: squares and products
// wrap on overflow, and Abs(math.MinInt) is math.MinInt.
//
// No function modifies its input slice.
package ints
