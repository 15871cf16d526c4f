package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-stream-utils/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleEveryNth() {
	fmt.Println(arr.EveryNth([]string{"A", "B", "C", "D", "E", "F"}, 3))
	// Output: [C F]
}

func ExampleZip() {
	fmt.Println(arr.Zip([]string{"a", "b", "c"}, []int{1, 2}))
	// Output: [(a, 1) (b, 2)]
}

func ExampleSwapPairs() {
	fmt.Println(arr.SwapPairs([]int{1, 2, 3, 4, 5}))
	// Output: [2 1 4 3 5]
}

func ExamplePairwise() {
	fmt.Println(arr.Pairwise([]int{1, 3, 6, 10}, func(a, b int) int { return b - a }))
	// Output: [2 3 4]
}

func ExamplePercentNil() {
	a, b := "a", "b"
	fmt.Println(arr.PercentNil([]*string{&a, nil, nil, &b}))
	// Output: 50
}
