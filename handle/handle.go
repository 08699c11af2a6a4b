// Package handle provides shared ownership of a value with deterministic
// cleanup: every holder keeps the value alive, and the finalizer runs exactly
// once, when the last handle is released.
package handle

import "sync/atomic"

type cell[T any] struct {
	value    T
	refs     atomic.Int64
	finalize func(*T)
}

// Ref is a counted handle to a shared value. The zero Ref is invalid.
//
// Assigning a Ref copies the handle without taking a new reference; the copy
// and the original must be released exactly once in total. Use Clone for a
// handle with its own reference.
type Ref[T any] struct {
	cell *cell[T]
}

// New creates the first handle to value. finalize may be nil; otherwise it
// runs when the last handle is released.
func New[T any](value T, finalize func(*T)) Ref[T] {
	c := &cell[T]{value: value, finalize: finalize}
	c.refs.Store(1)
	return Ref[T]{cell: c}
}

// Clone returns a new handle sharing the same value. Cloning an invalid
// handle returns an invalid handle.
func (r Ref[T]) Clone() Ref[T] {
	if r.cell == nil {
		return Ref[T]{}
	}
	r.cell.refs.Add(1)
	return Ref[T]{cell: r.cell}
}

// Release drops this handle and invalidates it. The finalizer runs if no
// other handle remains. Releasing an invalid handle is a no-op, so a handle
// can be released at most once through any given copy.
func (r *Ref[T]) Release() {
	if r.cell == nil {
		return
	}
	c := r.cell
	r.cell = nil
	if c.refs.Add(-1) == 0 && c.finalize != nil {
		c.finalize(&c.value)
	}
}

// Get returns a pointer to the shared value, or nil for an invalid handle.
func (r Ref[T]) Get() *T {
	if r.cell == nil {
		return nil
	}
	return &r.cell.value
}

// Valid reports whether the handle still holds a reference.
func (r Ref[T]) Valid() bool {
	return r.cell != nil
}
