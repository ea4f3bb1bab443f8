package vec

import "cmp"

// Equal reports whether two vectors hold element-wise equal visible
// sequences. Capacity never affects equality: vectors with different
// growth histories but the same contents compare equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.block.data[i] != b.block.data[i] {
			return false
		}
	}
	return true
}

// Compare orders two vectors lexicographically over their visible
// sequences, element by element. The result is -1 when a sorts before b,
// +1 when after, and 0 when the sequences are equal. A shorter vector
// that is a prefix of a longer one sorts first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.block.data[i], b.block.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a sorts strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether b does not sort before a.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether b sorts strictly before a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports whether a does not sort before b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
