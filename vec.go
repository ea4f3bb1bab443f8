package vec

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is reported by At when the index is outside the visible
// sequence. It is the only recoverable error in this package.
var ErrOutOfRange = errors.New("index out of range")

// Hint is a reservation request consumed at construction time: capacity
// for n elements, zero of them present. It exists as a distinct type so
// that "a vector of n elements" and "a vector with room for n elements"
// stay separate construction intents.
type Hint struct {
	capacity int
}

// WithCapacity builds a reservation hint for NewHint.
// If n < 0, the hint requests capacity 0.
func WithCapacity(n int) Hint {
	if n < 0 {
		n = 0
	}
	return Hint{capacity: n}
}

// Vector is a growable array backed by a single exclusively owned Block.
// Elements at indices [0, Len()) are the visible sequence; slots between
// Len() and Cap() are allocated but logically absent. Not goroutine-safe.
type Vector[T any] struct {
	block    Block[T]
	size     int
	capacity int
}

// New creates an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n zero-valued elements with size == capacity == n.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative size %d", n))
	}
	return &Vector[T]{block: newBlock[T](n), size: n, capacity: n}
}

// NewFill creates a vector of n elements, each a copy of fill.
func NewFill[T any](n int, fill T) *Vector[T] {
	v := NewSize[T](n)
	for i := 0; i < n; i++ {
		v.block.data[i] = fill
	}
	return v
}

// Of creates a vector holding the given elements in order,
// with size == capacity == len(items).
func Of[T any](items ...T) *Vector[T] {
	v := NewSize[T](len(items))
	copy(v.block.data, items)
	return v
}

// NewHint creates an empty vector with storage pre-sized to the hint's
// capacity. Len is 0; the first h pushes never reallocate.
func NewHint[T any](h Hint) *Vector[T] {
	return &Vector[T]{block: newBlock[T](h.capacity), capacity: h.capacity}
}

// Len returns the number of visible elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the backing block can hold without
// reallocation.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// Empty reports whether the vector has no visible elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// visible is the user-observable range of the backing block.
func (v *Vector[T]) visible() []T {
	return v.block.data[:v.size]
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
}

// Get returns the element at index i. The caller guarantees
// 0 <= i < Len(); violation panics.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	return *v.block.at(i)
}

// Ptr returns a pointer to the element at index i for in-place
// modification. The caller guarantees 0 <= i < Len(); violation panics.
// The pointer is invalidated by any reallocating operation.
func (v *Vector[T]) Ptr(i int) *T {
	v.checkIndex(i)
	return v.block.at(i)
}

// Set assigns the element at index i. The caller guarantees
// 0 <= i < Len(); violation panics.
func (v *Vector[T]) Set(i int, x T) {
	v.checkIndex(i)
	*v.block.at(i) = x
}

// At returns a pointer to the element at index i, or ErrOutOfRange if i
// is outside the visible sequence. This is the checked counterpart of Ptr.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("vec: index %d out of range [0, %d): %w", i, v.size, ErrOutOfRange)
	}
	return v.block.at(i), nil
}

// Clear drops all visible elements. Capacity is unchanged and vacated
// slots keep their old values until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows capacity to exactly n, copying the visible elements into
// a fresh block. It is a no-op when n <= Cap(), so repeated calls with
// the same bound never reallocate. Size is unchanged. Every other growth
// operation is expressed in terms of this reallocation step.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	nb := newBlock[T](n)
	copy(nb.data, v.visible())
	v.block.swap(&nb)
	v.capacity = n
}

// Resize changes the number of visible elements to n.
//
// Growing past capacity reallocates to max(n, 2*Cap()) and zero-fills the
// newly exposed elements. Growing within capacity zero-fills [Len(), n)
// in place. Shrinking just lowers the size; vacated slots keep their old
// values until overwritten.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		panic(fmt.Sprintf("vec: negative size %d", n))
	case n > v.capacity:
		grown := max(n, 2*v.capacity)
		nb := newBlock[T](grown)
		copy(nb.data, v.visible())
		v.block.swap(&nb)
		v.size = n
		v.capacity = grown
	case n > v.size:
		// Slots past the old size may hold stale values from earlier
		// shrinks; expose them as zero values.
		clear(v.block.data[v.size:n])
		v.size = n
	default:
		v.size = n
	}
}

// PushBack appends x, doubling capacity via the Resize growth path when
// the vector is full. Amortized O(1).
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.capacity {
		v.Resize(v.size + 1)
		v.block.data[v.size-1] = x
		return
	}
	v.block.data[v.size] = x
	v.size++
}

// Insert places x before index i and returns the inserted element's
// index. i may equal Len(), which appends. Elements at [i, Len()) shift
// one slot right; a full vector grows first (capacity 0 becomes 1).
// The caller guarantees 0 <= i <= Len(); violation panics.
func (v *Vector[T]) Insert(i int, x T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: insert index %d out of range [0, %d]", i, v.size))
	}
	if v.size == v.capacity {
		oldSize := v.size
		v.Resize(v.size + 1)
		shiftRight(v.block.data, i, oldSize)
		v.block.data[i] = x
		return i
	}
	shiftRight(v.block.data, i, v.size)
	v.block.data[i] = x
	v.size++
	return i
}

// shiftRight moves data[lo:hi] one slot toward the end, walking
// back-to-front so no slot is read after it has been overwritten.
func shiftRight[T any](data []T, lo, hi int) {
	for j := hi; j > lo; j-- {
		data[j] = data[j-1]
	}
}

// PopBack drops the last element. The vector must be non-empty; violation
// panics. The vacated slot keeps its old value until overwritten.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at index i and returns the index now holding
// its successor, which equals Len() when the last element was erased.
// The caller guarantees 0 <= i < Len(); violation panics.
//
// Erase rebuilds the backing block at exactly the pre-erase size rather
// than shifting in place, so capacity shrinks to that size and all
// outstanding element pointers are invalidated.
func (v *Vector[T]) Erase(i int) int {
	v.checkIndex(i)
	nb := newBlock[T](v.size)
	copy(nb.data, v.block.data[:i])
	copy(nb.data[i:], v.block.data[i+1:v.size])
	v.block.swap(&nb)
	v.capacity = v.block.len()
	v.size--
	return i
}

// Swap exchanges the contents, sizes and capacities of two vectors. O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.block.swap(&other.block)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Clone returns a deep, independent copy with the same visible sequence
// and the same capacity as the receiver.
func (v *Vector[T]) Clone() *Vector[T] {
	nb := newBlock[T](v.capacity)
	copy(nb.data, v.visible())
	return &Vector[T]{block: nb, size: v.size, capacity: v.capacity}
}

// Assign replaces the receiver's contents with a deep copy of other.
// Implemented as clone-and-swap, so assigning a vector to itself is safe.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other.Clone())
}

// Take moves the receiver's contents into a new vector and leaves the
// receiver valid and empty (size 0, capacity 0). The move is a plain
// state swap with a fresh default instance and cannot fail partway.
func (v *Vector[T]) Take() *Vector[T] {
	out := New[T]()
	out.Swap(v)
	return out
}

// All returns a forward iterator over index/value pairs of the visible
// sequence. The sequence is finite and re-obtainable: call All again to
// restart. Values are copies; use Ptrs to mutate in place.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block.data[i]) {
				return
			}
		}
	}
}

// Ptrs returns a forward iterator over index/pointer pairs of the visible
// sequence, for in-place mutation. The vector must not grow, shrink or
// reallocate during iteration.
func (v *Vector[T]) Ptrs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block.at(i)) {
				return
			}
		}
	}
}
