package vec

// Block is an exclusively owned contiguous heap allocation of elements.
// It is sized once at construction and cannot resize; Vector grows by
// allocating a fresh Block and swapping it in. The zero value is a
// zero-length block, so an empty Vector performs no allocation.
type Block[T any] struct {
	data []T
}

// newBlock allocates a block of exactly n zero-valued slots.
func newBlock[T any](n int) Block[T] {
	if n <= 0 {
		return Block[T]{}
	}
	return Block[T]{data: make([]T, n)}
}

// at returns a pointer to slot i anywhere in the allocation. Bounds are
// the allocation length, not the owning vector's size.
func (b *Block[T]) at(i int) *T {
	return &b.data[i]
}

// len reports the allocation length.
func (b *Block[T]) len() int {
	return len(b.data)
}

// swap exchanges the allocations of two blocks.
func (b *Block[T]) swap(other *Block[T]) {
	b.data, other.data = other.data, b.data
}
