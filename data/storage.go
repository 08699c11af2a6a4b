package data

import "iter"

// Id identifies a value held by a Storage. Ids are assigned by Push, start at
// 1 and are never reused, not even after the value is removed.
type Id = uint64

// NullId is never assigned by a Storage.
const NullId Id = 0

// Storage is a Map with an automatic key generator: an object registry whose
// callers hold opaque ids instead of pointers. Lookups go through the hash
// index, so they stay O(1) as the registry grows, and the values stay dense
// for fast iteration.
//
// Removal may move another value inside the sequence, so pointers obtained
// from Get must be re-fetched after any mutation.
type Storage[T any] struct {
	counter Id
	entries *Map[T]
}

// NewStorage creates an empty storage. Options are forwarded to the
// underlying hash index.
func NewStorage[T any](opts ...Option) *Storage[T] {
	return &Storage[T]{entries: NewMap[T](opts...)}
}

// Push stores value and returns the id assigned to it.
func (s *Storage[T]) Push(value T) Id {
	s.counter++
	s.entries.Set(s.counter, value)
	return s.counter
}

// Get returns a pointer to the value with the given id, or nil.
func (s *Storage[T]) Get(id Id) *T {
	return s.entries.Get(id)
}

// MustGet returns a pointer to the value with the given id. It panics when
// the id is absent: ids are storage-assigned, so indexing by an id that was
// never returned by Push (or was removed) is a caller bug, not a miss to
// recover from.
func (s *Storage[T]) MustGet(id Id) *T {
	p := s.entries.Get(id)
	if p == nil {
		panic("data: no such id")
	}
	return p
}

// Remove deletes the value with the given id. The id is not recycled.
func (s *Storage[T]) Remove(id Id) {
	s.entries.Remove(id)
}

// Exists reports whether a value is stored under id.
func (s *Storage[T]) Exists(id Id) bool {
	return s.entries.Exists(id)
}

// Count returns the number of stored values.
func (s *Storage[T]) Count() int {
	return s.entries.Count()
}

// IsEmpty reports whether the storage holds no values.
func (s *Storage[T]) IsEmpty() bool {
	return s.entries.IsEmpty()
}

// Capacity returns the slot count of the underlying hash index.
func (s *Storage[T]) Capacity() int {
	return s.entries.Capacity()
}

// Clear removes every value. The id counter is kept, so ids handed out before
// the clear are never assigned again.
func (s *Storage[T]) Clear() {
	s.entries.Clear()
}

// Iter returns an iterator over (id, value) pairs in sequence order.
func (s *Storage[T]) Iter() iter.Seq2[Id, *T] {
	return s.entries.Iter()
}
