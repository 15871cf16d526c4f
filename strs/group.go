package strs

import (
	"unicode/utf8"

	"github.com/hasbyte1/go-stream-utils/stream"
)

// LengthMap maps every distinct string to its rune count.
func LengthMap(items []string) map[string]int {
	return stream.ToMap(stream.From(items), identity, runeLen)
}

// ReverseMap maps every distinct string to its reversal.
func ReverseMap(items []string) map[string]string {
	return stream.ToMap(stream.From(items), identity, Reversed)
}

// GroupByLength groups the strings by rune count. Each group keeps input
// order.
func GroupByLength(items []string) map[int][]string {
	return stream.GroupBy(stream.From(items), runeLen)
}

// GroupByFirstRune groups the non-empty strings by their first rune.
func GroupByFirstRune(items []string) map[rune][]string {
	nonEmpty := stream.From(items).Filter(func(s string) bool { return s != "" })
	return stream.GroupBy(nonEmpty, func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	})
}

// LengthCounts maps every rune count to the number of strings of that
// length.
func LengthCounts(items []string) map[int]int {
	return stream.Counting(stream.From(items), runeLen).Map()
}

// LongestPerLength maps every rune count to the first string of that length.
func LongestPerLength(items []string) map[int]string {
	return stream.ToMapMerge(stream.From(items), runeLen, identity, func(existing, _ string) string {
		return existing
	})
}

// LowerFrequency counts the strings after lower-casing them, so "Go" and
// "GO" share an entry.
func LowerFrequency(items []string) map[string]int {
	return stream.Counting(stream.From(items), lower).Map()
}

// VowelCounts maps every distinct string to the number of ASCII vowels it
// contains.
func VowelCounts(items []string) map[string]int {
	return stream.ToMap(stream.From(items), identity, func(s string) int {
		return len(vowelRegex.FindAllStringIndex(s, -1))
	})
}

// Duplicates returns every string that occurs more than once, each listed
// once in order of first appearance.
func Duplicates(items []string) []string {
	return stream.Counting(stream.From(items), identity).Where(func(_ string, n int) bool { return n > 1 })
}

// MostFrequent returns the string occurring most often. Ties go to the
// string seen first. It reports false when items is empty.
func MostFrequent(items []string) (string, bool) {
	return stream.Counting(stream.From(items), identity).MostFrequent()
}

// FirstUnique returns the first string that occurs exactly once. It reports
// false when there is none.
func FirstUnique(items []string) (string, bool) {
	return stream.Counting(stream.From(items), identity).FirstWithCount(1)
}
