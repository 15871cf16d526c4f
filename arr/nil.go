package arr

// CountNil returns the number of nil entries in items.
func CountNil[T any](items []*T) int {
	n := 0
	for _, item := range items {
		if item == nil {
			n++
		}
	}
	return n
}

// PercentNil returns the share of nil entries in items as a whole-number
// percentage, rounded down. An empty slice yields 0.
//
//	a, b := "a", "b"
//	PercentNil([]*string{&a, nil, nil, &b}) // → 50
func PercentNil[T any](items []*T) int {
	if len(items) == 0 {
		return 0
	}
	return CountNil(items) * 100 / len(items)
}
