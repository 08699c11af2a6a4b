package data

import "iter"

type mapEntry[T any] struct {
	key   Key
	value T
}

// Map associates 64-bit keys with values of type T. The values live in a
// compact slice so that full iteration touches no holes; a HashMap maps each
// key to its position in that slice. Removal moves the last entry into the
// vacated position and retargets its index, keeping the slice dense at all
// times.
//
// Pointers returned by Get, Slot and Iter stay valid only until the next
// structural mutation (Set of a new key, Remove, Clear). Holding one across a
// mutation is a caller bug the map does not detect.
type Map[T any] struct {
	index   *HashMap
	entries []mapEntry[T]
}

// NewMap creates an empty map. Options are forwarded to the underlying
// HashMap.
func NewMap[T any](opts ...Option) *Map[T] {
	return &Map[T]{index: NewHashMap(opts...)}
}

// Get returns a pointer to the value stored under key, or nil.
func (m *Map[T]) Get(key Key) *T {
	v, ok := m.index.Get(key)
	if !ok {
		return nil
	}
	i, _ := v.AsIndex()
	return &m.entries[i].value
}

// Set stores value under key. An existing entry is overwritten in place; a
// new entry is appended to the sequence. It panics if key is NullKey.
func (m *Map[T]) Set(key Key, value T) {
	if v, ok := m.index.Get(key); ok {
		i, _ := v.AsIndex()
		m.entries[i].value = value
		return
	}
	m.index.Set(key, Index(uint64(len(m.entries))))
	m.entries = append(m.entries, mapEntry[T]{key: key, value: value})
}

// Slot returns a pointer to the value stored under key, inserting a zero
// value first if the key is absent. It panics if key is NullKey.
func (m *Map[T]) Slot(key Key) *T {
	if p := m.Get(key); p != nil {
		return p
	}
	var zero T
	m.Set(key, zero)
	return m.Get(key)
}

// Remove deletes key and its value. The last entry of the sequence is moved
// into the vacated position and its index entry is updated, so the sequence
// never holds a gap.
func (m *Map[T]) Remove(key Key) {
	v, ok := m.index.Get(key)
	if !ok {
		return
	}
	i, _ := v.AsIndex()
	last := len(m.entries) - 1
	if int(i) != last {
		m.entries[i] = m.entries[last]
	}
	m.entries[last] = mapEntry[T]{}
	m.entries = m.entries[:last]

	m.index.Remove(key)
	if int(i) < len(m.entries) {
		m.index.Set(m.entries[i].key, Index(i))
	}
}

// Exists reports whether key is present.
func (m *Map[T]) Exists(key Key) bool {
	return m.index.Exists(key)
}

// Count returns the number of entries.
func (m *Map[T]) Count() int {
	return m.index.Count()
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[T]) IsEmpty() bool {
	return m.index.IsEmpty()
}

// Capacity returns the slot count of the underlying hash index.
func (m *Map[T]) Capacity() int {
	return m.index.Capacity()
}

// Clear empties the map.
func (m *Map[T]) Clear() {
	m.index.Clear()
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Iter returns an iterator over entries in sequence order: insertion order,
// except that each removal moves the last entry into the freed position. The
// yielded pointers obey the same invalidation rules as Get.
func (m *Map[T]) Iter() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].key, &m.entries[i].value) {
				return
			}
		}
	}
}
