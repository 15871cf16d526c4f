package strs

import (
	"strings"

	"github.com/hasbyte1/go-stream-utils/stream"
)

func words(sentences []string) *stream.Stream[string] {
	return stream.FlatMap(stream.From(sentences), strings.Fields)
}

func lowerWords(sentences []string) *stream.Stream[string] {
	return stream.Map(words(sentences), lower)
}

// WordCount counts the words across all sentences.
func WordCount(sentences []string) int {
	return words(sentences).Count()
}

// WordFrequency counts the lower-cased words of a sentence.
func WordFrequency(sentence string) map[string]int {
	return stream.Counting(lowerWords([]string{sentence}), identity).Map()
}

// UniqueWords returns the set of lower-cased words used across all
// sentences.
func UniqueWords(sentences []string) map[string]struct{} {
	return stream.ToMap(lowerWords(sentences), identity, func(string) struct{} { return struct{}{} })
}

// UniqueSortedWords returns the distinct lower-cased words of all sentences
// in ascending lexicographic order.
func UniqueSortedWords(sentences []string) []string {
	return stream.SortedBy(stream.Distinct(lowerWords(sentences)), identity).ToSlice()
}
