package baditer

// maxHintCap bounds how much capacity Collect will pre-allocate from a
// producer's upper hint. A producer claiming billions of items must not
// be able to force an allocation of that size before yielding anything.
const maxHintCap = 4096

// Collect drains src into a slice, using the producer's size hint only
// as a capped capacity guess. Termination is driven by Next alone, so a
// producer that over-claims yields a shorter slice and one that
// under-claims still has every item collected.
func Collect[T any](src Producer[T]) []T {
	_, upper := src.SizeHint()
	if upper > maxHintCap {
		upper = maxHintCap
	}
	out := make([]T, 0, upper)
	for {
		item, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
