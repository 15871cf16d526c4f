package stream

// Sequence is the read-only surface of [Stream][T].
//
// Accept a Sequence in your own functions when they only need to inspect
// items, so callers can pass any implementation instead of a *Stream.
type Sequence[T any] interface {
	// ToSlice returns a copy of every item as a plain Go slice.
	ToSlice() []T

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// ForEach calls fn for every item in order.
	ForEach(fn func(T))

	// FindFirst returns the first item, optionally matching fns[0].
	FindFirst(fns ...func(T) bool) (T, bool)

	// FindLast returns the last item, optionally matching fns[0].
	FindLast(fns ...func(T) bool) (T, bool)
}

var _ Sequence[int] = (*Stream[int])(nil)

// Collect copies the items of any Sequence into a new Stream.
func Collect[T any](seq Sequence[T]) *Stream[T] {
	return wrap(seq.ToSlice())
}
