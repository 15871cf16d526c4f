package strs

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ASCII digits, matching anywhere in the string
	digitRegex = regexp.MustCompile(`\d`)

	vowelRegex = regexp.MustCompile(`[AEIOUaeiou]`)
)

const vowels = "AEIOUaeiou"

func isVowel(r rune) bool { return strings.ContainsRune(vowels, r) }

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func identity(s string) string { return s }

// Casers keep state and must not be shared between goroutines, so each call
// builds its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// Reversed returns s with its runes in reverse order.
func Reversed(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// rune by rune. The empty string is a palindrome.
func IsPalindrome(s string) bool {
	return s == Reversed(s)
}
