package strs

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-stream-utils/stream"
)

// Count returns the number of strings.
func Count(items []string) int {
	return stream.From(items).Count()
}

// CountLongerThan counts the strings with more than n runes.
func CountLongerThan(items []string, n int) int {
	return stream.From(items).Filter(func(s string) bool { return runeLen(s) > n }).Count()
}

// CountPalindromes counts the strings that are palindromes.
func CountPalindromes(items []string) int {
	return stream.From(items).Filter(IsPalindrome).Count()
}

// CountEndingWithVowel counts the strings whose last rune is an ASCII vowel.
func CountEndingWithVowel(items []string) int {
	return stream.From(items).Filter(func(s string) bool {
		r, _ := utf8.DecodeLastRuneInString(s)
		return s != "" && isVowel(r)
	}).Count()
}

// TotalLength sums the rune counts of all strings.
func TotalLength(items []string) int {
	return stream.Sum(stream.Map(stream.From(items), runeLen))
}

// AnyContains reports whether any string contains sub.
func AnyContains(items []string, sub string) bool {
	return stream.From(items).AnyMatch(func(s string) bool { return strings.Contains(s, sub) })
}

// AllLongerThan reports whether every string has more than n runes. It is
// true for an empty slice.
func AllLongerThan(items []string, n int) bool {
	return stream.From(items).AllMatch(func(s string) bool { return runeLen(s) > n })
}

// IsSorted reports whether items are in ascending lexicographic order.
// Equal neighbours are allowed.
func IsSorted(items []string) bool {
	return slices.IsSorted(items)
}

// JoinComma joins the strings with ", ".
func JoinComma(items []string) string {
	return stream.Joining(stream.From(items), ", ")
}

// FirstLetters joins the first rune of every non-empty string with ",".
func FirstLetters(items []string) string {
	firsts := stream.Map(
		stream.From(items).Filter(func(s string) bool { return s != "" }),
		func(s string) string {
			_, size := utf8.DecodeRuneInString(s)
			return s[:size]
		},
	)
	return stream.Joining(firsts, ",")
}

// LastOrEmpty returns the last string, or "" when items is empty.
func LastOrEmpty(items []string) string {
	last, _ := stream.From(items).FindLast()
	return last
}

// Longest returns the string with the most runes, or "" when items is
// empty. The first of several equally long strings wins.
func Longest(items []string) string {
	longest, _ := stream.From(items).Max(func(a, b string) bool { return runeLen(a) < runeLen(b) })
	return longest
}

// PartitionByDigit splits the strings into those containing at least one
// ASCII digit and the rest. Both results preserve input order.
func PartitionByDigit(items []string) (withDigit, without []string) {
	return stream.PartitionBy(stream.From(items), digitRegex.MatchString)
}
