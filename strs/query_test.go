package strs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stream-utils/strs"
)

func TestCounts(t *testing.T) {
	t.Parallel()

	in := []string{"idea", "sky", "", "tomato", "héllo"}
	assert.Equal(t, 5, strs.Count(in))
	assert.Equal(t, 0, strs.Count(nil))
	assert.Equal(t, 3, strs.CountLongerThan(in, 3))
	assert.Equal(t, 5, strs.CountLongerThan(in, -1))
	assert.Equal(t, 3, strs.CountEndingWithVowel(in))
	assert.Equal(t, 0, strs.CountEndingWithVowel(nil))
}

func TestMatchers(t *testing.T) {
	t.Parallel()

	in := []string{"golang", "rust", "zig"}
	assert.True(t, strs.AnyContains(in, "ust"))
	assert.False(t, strs.AnyContains(in, "java"))
	assert.False(t, strs.AnyContains(nil, ""))

	assert.True(t, strs.AllLongerThan(in, 2))
	assert.False(t, strs.AllLongerThan(in, 3))
	assert.True(t, strs.AllLongerThan(nil, 100))
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want bool
	}{
		{nil, true},
		{[]string{"a"}, true},
		{[]string{"a", "a", "b"}, true},
		{[]string{"b", "a"}, false},
		{[]string{"B", "a"}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strs.IsSorted(tt.in), "IsSorted(%q)", tt.in)
	}
}

func TestJoins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a, b, c", strs.JoinComma([]string{"a", "b", "c"}))
	assert.Equal(t, "", strs.JoinComma(nil))
	assert.Equal(t, "a,b,é", strs.FirstLetters([]string{"apple", "", "banana", "élan"}))
	assert.Equal(t, "", strs.FirstLetters([]string{"", ""}))
}

func TestLastOrEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c", strs.LastOrEmpty([]string{"a", "b", "c"}))
	assert.Equal(t, "", strs.LastOrEmpty(nil))
}

func TestLongest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bbb", strs.Longest([]string{"aa", "bbb", "ccc"}))
	// equal rune counts, so the first wins even though "héllo" has more bytes
	assert.Equal(t, "hello", strs.Longest([]string{"hello", "héllo"}))
	assert.Equal(t, "", strs.Longest(nil))
}

func TestPartitionByDigit(t *testing.T) {
	t.Parallel()

	with, without := strs.PartitionByDigit([]string{"a1", "b", "2c", ""})
	assert.Equal(t, []string{"a1", "2c"}, with)
	assert.Equal(t, []string{"b", ""}, without)

	with, without = strs.PartitionByDigit([]string{"abc", "a2b", "xyz3", "nope"})
	assert.Equal(t, []string{"a2b", "xyz3"}, with)
	assert.Equal(t, []string{"abc", "nope"}, without)

	with, without = strs.PartitionByDigit(nil)
	require.NotNil(t, with)
	require.NotNil(t, without)
	assert.Empty(t, with)
	assert.Empty(t, without)
}
