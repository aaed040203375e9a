package markov

import "iter"

// Counter is a multiset that tracks how many times each item was observed,
// along with the running total of all observations. Items are enumerated in
// the order they were first observed.
type Counter[T comparable] struct {
	index  map[T]int
	items  []T
	counts []int
	total  int
}

// NewCounter returns an empty Counter.
func NewCounter[T comparable]() *Counter[T] {
	return &Counter[T]{index: make(map[T]int)}
}

// Increment records one more observation of item.
func (c *Counter[T]) Increment(item T) {
	c.add(item, 1)
}

func (c *Counter[T]) add(item T, n int) {
	if i, ok := c.index[item]; ok {
		c.counts[i] += n
	} else {
		c.index[item] = len(c.items)
		c.items = append(c.items, item)
		c.counts = append(c.counts, n)
	}
	c.total += n
}

// Get returns the number of times item was observed, or 0 if it never was.
func (c *Counter[T]) Get(item T) int {
	if i, ok := c.index[item]; ok {
		return c.counts[i]
	}
	return 0
}

// Total returns the sum of all counts.
func (c *Counter[T]) Total() int {
	return c.total
}

// Len returns the number of distinct items.
func (c *Counter[T]) Len() int {
	return len(c.items)
}

// All returns an iterator over every (item, count) pair in first-observed
// order. The iterator can be ranged over any number of times.
func (c *Counter[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for i, item := range c.items {
			if !yield(item, c.counts[i]) {
				return
			}
		}
	}
}
