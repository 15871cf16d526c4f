package ints

import (
	"github.com/hasbyte1/go-stream-utils/stream"
)

// GroupByRemainder groups the items by n % divisor. Go's remainder keeps the
// sign of the dividend, so with divisor 3 the item -4 lands under key -1.
// A zero divisor panics.
func GroupByRemainder(items []int, divisor int) map[int][]int {
	return stream.GroupBy(stream.From(items), func(n int) int { return n % divisor })
}

// GroupByParity groups the items under true (even) and false (odd). A key is
// present only if at least one item has that parity.
func GroupByParity(items []int) map[bool][]int {
	return stream.GroupBy(stream.From(items), isEven)
}

// GroupByDigitSum groups the items by the sum of the decimal digits of their
// absolute value.
func GroupByDigitSum(items []int) map[int][]int {
	return stream.GroupBy(stream.From(items), DigitSum)
}

// PartitionPrimes splits the items into primes and the rest, both in input
// order.
func PartitionPrimes(items []int) (primes, rest []int) {
	return stream.PartitionBy(stream.From(items), IsPrime)
}

// SquareMap maps every distinct item to its square.
func SquareMap(items []int) map[int]int {
	return stream.ToMap(stream.From(items), identity, func(n int) int { return n * n })
}
