// Package baditer provides a sequence producer that deliberately
// misreports its own length. Consumers that trust a producer's size
// hint to pre-allocate buffers or bound iteration are run against it to
// verify they neither over-allocate, truncate, nor duplicate output
// when the hint is wrong in either direction.
//
// The lying hint is the entire point of the package. Do not "correct"
// SizeHint to track the real remaining count; the mismatch between the
// claimed and actual lengths is the behavior under test.
package baditer

// Producer is the sequence contract consumers under test program
// against: a stateful Next plus a static size hint.
type Producer[T any] interface {
	// Next returns the next item and true, or the zero value and false
	// once the sequence is exhausted.
	Next() (T, bool)
	// SizeHint returns a lower and upper bound on the number of items
	// the producer claims it will yield.
	SizeHint() (lower, upper int)
}

// Iter is a producer whose advertised length and actual length are
// configured independently and may diverge arbitrarily.
type Iter[T any] struct {
	// cur is the number of items produced so far.
	cur int
	// limit is how many items the iterator will actually produce.
	limit int
	// claimed is how many items the iterator says it will produce.
	claimed int
	// items is the backing pool; it repeats when limit exceeds its
	// length.
	items []T
}

// New creates an iterator that actually produces limit items while
// claiming it will produce claimed items. The two values need not agree
// with each other or with len(items). Panics if items is empty.
func New[T any](limit, claimed int, items []T) *Iter[T] {
	if len(items) == 0 {
		panic("baditer: items must not be empty")
	}
	return &Iter[T]{
		limit:   limit,
		claimed: claimed,
		items:   items,
	}
}

// Next returns the next item, cycling through the backing pool. After
// limit items have been produced every call reports exhaustion without
// advancing further.
func (it *Iter[T]) Next() (T, bool) {
	if it.cur >= it.limit {
		var zero T
		return zero, false
	}
	item := it.items[it.cur%len(it.items)]
	it.cur++
	return item, true
}

// SizeHint reports a lower bound of 0 and an upper bound of the claimed
// count, regardless of how many items remain. The hint is fixed at
// construction and never self-corrects, even after exhaustion.
func (it *Iter[T]) SizeHint() (lower, upper int) {
	return 0, it.claimed
}
