package ints

import (
	"strconv"

	"github.com/hasbyte1/go-stream-utils/arr"
	"github.com/hasbyte1/go-stream-utils/stream"
)

func identity(n int) int { return n }

// Unique drops repeated values, keeping first occurrences in order.
func Unique(items []int) []int {
	return arr.Distinct(items)
}

// SkipFirst drops the first n items. A negative n drops nothing.
func SkipFirst(items []int, n int) []int {
	return arr.Skip(items, n)
}

// KeepFirst keeps at most the first n items. A negative n keeps nothing.
func KeepFirst(items []int, n int) []int {
	return arr.Take(items, n)
}

// Flatten concatenates the lists in order.
func Flatten(lists [][]int) []int {
	return arr.Flatten(lists)
}

// Squares replaces every item with its square.
func Squares(items []int) []int {
	return stream.Map(stream.From(items), func(n int) int { return n * n }).ToSlice()
}

// Abs replaces every item with its absolute value.
func Abs(items []int) []int {
	return stream.Map(stream.From(items), abs).ToSlice()
}

// DoubleOdds doubles the odd items and leaves the even ones.
func DoubleOdds(items []int) []int {
	return stream.Map(stream.From(items), func(n int) int {
		if isOdd(n) {
			return n * 2
		}
		return n
	}).ToSlice()
}

// ZeroNegatives replaces negative items with 0.
func ZeroNegatives(items []int) []int {
	return stream.Map(stream.From(items), func(n int) int { return max(n, 0) }).ToSlice()
}

// EvenFlags maps every item to whether it is even.
func EvenFlags(items []int) []bool {
	return stream.Map(stream.From(items), isEven).ToSlice()
}

// YesNoEven maps every item to "yes" if it is even and "no" otherwise.
func YesNoEven(items []int) []string {
	return stream.Map(stream.From(items), func(n int) string {
		if isEven(n) {
			return "yes"
		}
		return "no"
	}).ToSlice()
}

// JoinDash joins the decimal forms of the items with "-".
func JoinDash(items []int) string {
	return stream.Joining(stream.Map(stream.From(items), strconv.Itoa), "-")
}

// Differences returns items[i] - items[i-1] for every consecutive pair.
// Slices of fewer than two items yield an empty slice.
func Differences(items []int) []int {
	return arr.Pairwise(items, func(prev, next int) int { return next - prev })
}

// NegativeIndices returns the positions of the negative items.
func NegativeIndices(items []int) []int {
	return stream.IndexWhere(stream.From(items), func(n int) bool { return n < 0 })
}

// UntilZero returns the items before the first 0. Without a 0 it returns a
// copy of items.
func UntilZero(items []int) []int {
	return arr.TakeWhile(items, func(n int) bool { return n != 0 })
}

// ─────────────────────────────────────────────────────────────────────────────
// Filters
// ─────────────────────────────────────────────────────────────────────────────

// Evens keeps the even items.
func Evens(items []int) []int {
	return stream.From(items).Filter(isEven).ToSlice()
}

// PerfectSquares keeps the items that are perfect squares.
func PerfectSquares(items []int) []int {
	return stream.From(items).Filter(IsPerfectSquare).ToSlice()
}

// Palindromes keeps the items whose decimal digits read the same in both
// directions. The sign is ignored, so -121 is kept.
func Palindromes(items []int) []int {
	return stream.From(items).Filter(IsPalindrome).ToSlice()
}

// Fibonacci keeps the items that are Fibonacci numbers.
func Fibonacci(items []int) []int {
	return stream.From(items).Filter(IsFibonacci).ToSlice()
}

// WithoutMultiples drops the items divisible by any of divisors. Zero
// divisors are ignored.
//
//	ints.WithoutMultiples(items, 3, 5)
func WithoutMultiples(items []int, divisors ...int) []int {
	return stream.From(items).Reject(func(n int) bool {
		for _, d := range divisors {
			if d != 0 && n%d == 0 {
				return true
			}
		}
		return false
	}).ToSlice()
}

// PairsSummingTo returns every ordered pair (a, b) of items with a+b == sum
// and a != b. Pairs are listed by the position of a, then of b, so both
// (1, 4) and (4, 1) appear. Equal values never pair, even at different
// positions.
func PairsSummingTo(items []int, sum int) []arr.Pair[int, int] {
	return stream.FlatMap(stream.From(items), func(a int) []arr.Pair[int, int] {
		return stream.Map(
			stream.From(items).Filter(func(b int) bool { return b != a && a+b == sum }),
			func(b int) arr.Pair[int, int] { return arr.Pair[int, int]{Left: a, Right: b} },
		).ToSlice()
	}).ToSlice()
}
