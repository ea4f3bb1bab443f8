// Package vec implements a generic growable array (vector) with manual
// capacity management.
//
// # Overview
//
// A Vector wraps a single exclusively owned contiguous block of storage
// plus a logical size and a capacity. Unlike a plain Go slice, capacity is
// an explicit part of the API: callers can pre-size storage with a
// reservation hint, force growth with Reserve, and observe exactly when
// reallocation happens. This is particularly useful for:
//
//   - Teaching and testing amortized growth behavior
//   - Code that needs append-without-reallocation guarantees
//   - Porting index-and-capacity based container code to Go
//   - Measuring allocation behavior against the builtin slice idiom
//
// # Basic Usage
//
//	v := vec.Of(1, 2, 3)
//	v.PushBack(4)          // [1 2 3 4]
//	v.Insert(1, 99)        // [1 99 2 3 4]
//	v.Erase(0)             // [99 2 3 4]
//
//	// Pre-size storage without populating it
//	w := vec.NewHint[string](vec.WithCapacity(64))
//	w.PushBack("a") // no reallocation for the first 64 pushes
//
// # Growth Policy
//
// Capacity grows by doubling: when an operation needs more room than the
// current capacity provides, the new capacity is max(needed, 2*cap). A
// full vector of capacity 0 grows to capacity 1. Growth allocates the new
// block before discarding the old one, so a failed allocation leaves the
// vector untouched. Over a sequence of PushBack calls this amortizes to
// O(1) per appended element.
//
// # Error Handling
//
// At is the only operation that reports a recoverable error; it returns
// ErrOutOfRange for an index outside the visible sequence. Every other
// precondition violation (unchecked access out of range, PopBack or Erase
// of elements that do not exist, Insert outside [0, Len()]) is a caller
// bug and panics with a "vec:" prefixed message.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Insert, Erase, Resize, Reserve: O(n)
//   - Index access, Len, Cap, Clear, PopBack, Swap, Take: O(1)
//
// # Important Notes
//
//   - Not goroutine-safe: callers must serialize concurrent access
//   - Clear, PopBack and shrinking Resize do not zero vacated slots; stale
//     element values stay in the backing block until overwritten
//   - Pointers returned by Ptr and At are invalidated by any operation
//     that reallocates (Reserve, growing Resize, growth in PushBack or
//     Insert, and every Erase)
package vec
