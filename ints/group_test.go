package ints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stream-utils/ints"
)

func TestGroupByRemainder(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		map[int][]int{0: {3, 6}, 1: {1, 4}, 2: {2, 5}},
		ints.GroupByRemainder([]int{1, 2, 3, 4, 5, 6}, 3),
	)
	assert.Equal(t, map[int][]int{-1: {-4}, 1: {1}}, ints.GroupByRemainder([]int{-4, 1}, 3))
}

func TestGroupByParity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[bool][]int{true: {2, 4}, false: {1, 3}}, ints.GroupByParity([]int{1, 2, 3, 4}))

	odd := ints.GroupByParity([]int{1, 3})
	_, hasEven := odd[true]
	assert.False(t, hasEven)
	assert.Equal(t, []int{1, 3}, odd[false])

	assert.Empty(t, ints.GroupByParity(nil))
}

func TestGroupByDigitSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		map[int][]int{3: {12, 21, -3, 30}, 5: {5}, 0: {0}},
		ints.GroupByDigitSum([]int{12, 21, -3, 30, 5, 0}),
	)
}

func TestPartitionPrimes(t *testing.T) {
	t.Parallel()

	primes, rest := ints.PartitionPrimes([]int{1, 2, 3, 4, 5, -7})
	assert.Equal(t, []int{2, 3, 5}, primes)
	assert.Equal(t, []int{1, 4, -7}, rest)

	primes, rest = ints.PartitionPrimes(nil)
	require.NotNil(t, primes)
	require.NotNil(t, rest)
}

func TestSquareMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[int]int{2: 4, -2: 4, 3: 9}, ints.SquareMap([]int{2, -2, 3, 2}))
}
