package ints

import (
	"math"

	"github.com/hasbyte1/go-stream-utils/stream"
)

const (
	// NoDataMin is what [Min] returns for an empty slice.
	NoDataMin = math.MinInt

	// NoDataMax is what [Max] returns for an empty slice.
	NoDataMax = math.MaxInt
)

func less(a, b int) bool { return a < b }

func isEven(n int) bool { return n%2 == 0 }

func isOdd(n int) bool { return n%2 != 0 }

// Sum adds all items. The sum of an empty slice is 0.
func Sum(items []int) int {
	return stream.Sum(stream.From(items))
}

// SumOdds adds the odd items.
func SumOdds(items []int) int {
	return stream.Sum(stream.From(items).Filter(isOdd))
}

// Product multiplies all items. The product of an empty slice is 1.
func Product(items []int) int {
	return stream.From(items).Reduce(func(acc, n int) int { return acc * n }, 1)
}

// ProductOfEvens multiplies the even items, or returns 1 if there are none.
func ProductOfEvens(items []int) int {
	return Product(Evens(items))
}

// Min returns the smallest item, or [NoDataMin] for an empty slice.
func Min(items []int) int {
	if m, ok := stream.From(items).Min(less); ok {
		return m
	}
	return NoDataMin
}

// Max returns the largest item, or [NoDataMax] for an empty slice.
func Max(items []int) int {
	if m, ok := stream.From(items).Max(less); ok {
		return m
	}
	return NoDataMax
}

// Range returns Max(items) - Min(items), or 0 for an empty slice.
func Range(items []int) int {
	if len(items) == 0 {
		return 0
	}
	return Max(items) - Min(items)
}

// Average returns the arithmetic mean, or 0 for an empty slice.
func Average(items []int) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items)) / float64(len(items))
}

// FirstOrZero returns the first item, or 0 for an empty slice.
func FirstOrZero(items []int) int {
	first, _ := stream.From(items).FindFirst()
	return first
}

// SecondLargest returns the second largest distinct value. It reports false
// when items holds fewer than two distinct values.
func SecondLargest(items []int) (int, bool) {
	return stream.SortedByDesc(stream.Distinct(stream.From(items)), identity).Skip(1).FindFirst()
}

// SumWithoutExtremes sums the items after dropping one occurrence of the
// smallest and one of the largest. Slices of two or fewer items sum to 0.
func SumWithoutExtremes(items []int) int {
	sorted := stream.From(items).Sorted(less)
	return stream.Sum(sorted.Skip(1).Limit(len(items) - 2))
}
