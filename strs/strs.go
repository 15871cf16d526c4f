package strs

import (
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-stream-utils/arr"
	"github.com/hasbyte1/go-stream-utils/stream"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// Upper converts every string to upper case.
func Upper(items []string) []string {
	return stream.Map(stream.From(items), upper).ToSlice()
}

// Capitalize upper-cases the first rune of every string and leaves the rest
// untouched. Empty strings stay empty.
func Capitalize(items []string) []string {
	return stream.Map(stream.From(items), func(s string) string {
		if s == "" {
			return s
		}
		_, size := utf8.DecodeRuneInString(s)
		return upper(s[:size]) + s[size:]
	}).ToSlice()
}

// RepeatTwice concatenates every string with itself: "abc" → "abcabc".
func RepeatTwice(items []string) []string {
	return stream.Map(stream.From(items), func(s string) string { return s + s }).ToSlice()
}

// RepeatByLength repeats every string as many times as it has runes:
// "hi" → "hihi", "" → "".
func RepeatByLength(items []string) []string {
	return stream.Map(stream.From(items), func(s string) string {
		return strings.Repeat(s, runeLen(s))
	}).ToSlice()
}

// RemoveVowels strips the ASCII vowels (either case) from every string.
func RemoveVowels(items []string) []string {
	return stream.Map(stream.From(items), func(s string) string {
		return vowelRegex.ReplaceAllString(s, "")
	}).ToSlice()
}

// Lengths replaces every string with its rune count.
func Lengths(items []string) []int {
	return stream.Map(stream.From(items), runeLen).ToSlice()
}

// LengthsDesc returns the rune counts of the strings sorted from longest to
// shortest.
func LengthsDesc(items []string) []int {
	return stream.SortedByDesc(stream.Map(stream.From(items), runeLen), func(n int) int { return n }).ToSlice()
}

// CharCodes flattens the strings into the sequence of their code points.
func CharCodes(items []string) []rune {
	return stream.FlatMap(stream.From(items), func(s string) []rune { return []rune(s) }).ToSlice()
}

// UniqueSortedRunes returns every distinct rune used in items, in ascending
// code-point order.
func UniqueSortedRunes(items []string) []rune {
	all := stream.FlatMap(stream.From(items), func(s string) []rune { return []rune(s) })
	return stream.SortedBy(stream.Distinct(all), func(r rune) rune { return r }).ToSlice()
}

// Prefixes lists every non-empty prefix of every string, shortest first:
// "abc" → "a", "ab", "abc".
func Prefixes(items []string) []string {
	return stream.FlatMap(stream.From(items), func(s string) []string {
		out := make([]string, 0, len(s))
		for i := range s {
			if i > 0 {
				out = append(out, s[:i])
			}
		}
		if s != "" {
			out = append(out, s)
		}
		return out
	}).ToSlice()
}

// Substrings lists every non-empty substring of every string, ordered by
// start position and then by end position: "ab" → "a", "ab", "b".
func Substrings(items []string) []string {
	return stream.FlatMap(stream.From(items), func(s string) []string {
		r := []rune(s)
		out := make([]string, 0, len(r)*(len(r)+1)/2)
		for i := range r {
			for j := i + 1; j <= len(r); j++ {
				out = append(out, string(r[i:j]))
			}
		}
		return out
	}).ToSlice()
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// WithPrefix keeps the strings starting with prefix.
func WithPrefix(items []string, prefix string) []string {
	return stream.From(items).Filter(func(s string) bool { return strings.HasPrefix(s, prefix) }).ToSlice()
}

// WithoutPrefix drops the strings starting with prefix.
func WithoutPrefix(items []string, prefix string) []string {
	return stream.From(items).Reject(func(s string) bool { return strings.HasPrefix(s, prefix) }).ToSlice()
}

// RemoveBlank drops empty and whitespace-only strings.
func RemoveBlank(items []string) []string {
	return stream.From(items).Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).ToSlice()
}

// RemovePalindromes drops the strings that are palindromes.
func RemovePalindromes(items []string) []string {
	return stream.From(items).Reject(IsPalindrome).ToSlice()
}

// EveryThird returns the items at 1-based positions 3, 6, 9, …
func EveryThird(items []string) []string {
	return arr.EveryNth(items, 3)
}

// Merge returns the strings of a followed by those of b.
func Merge(a, b []string) []string {
	return arr.Concat(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortByLength returns the strings sorted from shortest to longest. Strings
// of equal length keep their input order.
func SortByLength(items []string) []string {
	return stream.SortedBy(stream.From(items), runeLen).ToSlice()
}

// LongestN returns the n longest strings, longest first. Strings of equal
// length keep their input order. A negative n yields an empty slice.
func LongestN(items []string, n int) []string {
	return stream.SortedByDesc(stream.From(items), runeLen).Limit(n).ToSlice()
}
