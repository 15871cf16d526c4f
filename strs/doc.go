// Package strs implements operations over sequences of strings: case
// conversion, filtering, joining, substrings, palindromes, vowels, word
// splitting, grouping and frequency counting.
//
// Lengths and positions are measured in runes, so "héllo" has length 5.
// Words are maximal runs of non-whitespace, as split by [strings.Fields].
// Case mapping is full Unicode mapping (via golang.org/x/text/cases), so
// Upper([]string{"straße"}) yields "STRASSE".
//
// No function modifies its input slice. Operations that can find nothing
// return a boolean alongside the value, or document a fallback ("" for
// [LastOrEmpty] and [Longest]).
package strs
