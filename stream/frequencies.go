package stream

// Frequencies holds occurrence counts per key together with the order in
// which each key was first encountered. It is produced by [Counting].
type Frequencies[K comparable] struct {
	order  []K
	counts map[K]int
}

func newFrequencies[K comparable](capacity int) *Frequencies[K] {
	return &Frequencies[K]{
		order:  make([]K, 0, capacity),
		counts: make(map[K]int, capacity),
	}
}

func (f *Frequencies[K]) add(k K) {
	if _, ok := f.counts[k]; !ok {
		f.order = append(f.order, k)
	}
	f.counts[k]++
}

// Len returns the number of distinct keys.
func (f *Frequencies[K]) Len() int { return len(f.order) }

// Keys returns the distinct keys in first-encounter order.
func (f *Frequencies[K]) Keys() []K {
	out := make([]K, len(f.order))
	copy(out, f.order)
	return out
}

// Count returns the number of occurrences of k (0 if absent).
func (f *Frequencies[K]) Count(k K) int { return f.counts[k] }

// Map returns a copy of the counts as a plain map.
func (f *Frequencies[K]) Map() map[K]int {
	out := make(map[K]int, len(f.counts))
	for k, n := range f.counts {
		out[k] = n
	}
	return out
}

// Where returns, in first-encounter order, the keys whose count satisfies fn.
func (f *Frequencies[K]) Where(fn func(k K, count int) bool) []K {
	out := make([]K, 0)
	for _, k := range f.order {
		if fn(k, f.counts[k]) {
			out = append(out, k)
		}
	}
	return out
}

// FirstWithCount returns the first-encountered key seen exactly n times.
func (f *Frequencies[K]) FirstWithCount(n int) (K, bool) {
	for _, k := range f.order {
		if f.counts[k] == n {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// MostFrequent returns the key with the highest count. Ties go to the key
// encountered first. Returns false when no keys were counted.
func (f *Frequencies[K]) MostFrequent() (K, bool) {
	var best K
	if len(f.order) == 0 {
		return best, false
	}
	best = f.order[0]
	for _, k := range f.order[1:] {
		if f.counts[k] > f.counts[best] {
			best = k
		}
	}
	return best, true
}
