package arr

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	Left  A
	Right B
}

// String returns a human-readable representation: "(left, right)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// Zip pairs elements from a and b at the same index, stopping at the length
// of the shorter slice.
//
//	Zip([]string{"a", "b", "c"}, []int{1, 2}) // → [(a, 1) (b, 2)]
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{Left: a[i], Right: b[i]}
	}
	return out
}
