package strs_test

import (
	"fmt"

	"github.com/hasbyte1/go-stream-utils/strs"
)

func ExampleDuplicates() {
	fmt.Println(strs.Duplicates([]string{"go", "rust", "go", "zig", "rust", "go"}))
	// Output: [go rust]
}

func ExamplePartitionByDigit() {
	with, without := strs.PartitionByDigit([]string{"v2", "alpha", "3d", "beta"})
	fmt.Println(with, without)
	// Output: [v2 3d] [alpha beta]
}

func ExampleCapitalize() {
	fmt.Println(strs.Capitalize([]string{"hello", "élan", ""}))
	// Output: [Hello Élan ]
}

func ExampleUniqueSortedWords() {
	fmt.Println(strs.UniqueSortedWords([]string{"the quick fox", "the lazy dog"}))
	// Output: [dog fox lazy quick the]
}
