// Package data provides the container stack used to index engine resources:
// an open-addressing HashMap from 64-bit keys to word-sized values, a Map
// that keeps arbitrary values compact for fast iteration, and a Storage that
// hands out unique ids for the objects pushed into it.
//
// None of the containers are safe for concurrent use; the owner is expected
// to serialize access.
package data

import "iter"

// Key is a HashMap key.
type Key = uint64

// NullKey marks an empty slot in the backing array and can never be used as a
// key.
const NullKey Key = 0

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211

	defaultCapacity = 2
)

type hashEntry struct {
	key   Key
	value Value
}

// HashMap maps 64-bit keys to word-sized values using open addressing with
// linear probing. The capacity is always a power of two, so the probe start
// is computed with a mask instead of a modulo, and it doubles whenever an
// insert would push the load factor past 50%. Capacity never shrinks.
type HashMap struct {
	entries []hashEntry
	count   int
}

// Option configures a HashMap at construction time.
type Option func(*HashMap)

// WithCapacity pre-sizes the map so that at least n entries fit without
// growing.
func WithCapacity(n int) Option {
	return func(m *HashMap) {
		capacity := defaultCapacity
		for capacity < n*2 {
			capacity *= 2
		}
		m.entries = make([]hashEntry, capacity)
	}
}

// NewHashMap creates an empty map.
func NewHashMap(opts ...Option) *HashMap {
	m := &HashMap{}
	for _, opt := range opts {
		opt(m)
	}
	if m.entries == nil {
		m.entries = make([]hashEntry, defaultCapacity)
	}
	return m
}

// hashKey is FNV-1a over the 8 raw bytes of the key, least significant byte
// first. Growth re-probes every entry with the same function, so it must stay
// bit-for-bit stable.
func hashKey(key Key) uint64 {
	h := fnvOffset
	for i := 0; i < 8; i++ {
		h ^= (key >> (8 * i)) & 0xff
		h *= fnvPrime
	}
	return h
}

// lookup returns a pointer to the slot holding key, or nil. The pointer obeys
// the invalidation rules documented on Slot.
func (m *HashMap) lookup(key Key) *Value {
	if key == NullKey {
		return nil
	}
	mask := uint64(len(m.entries) - 1)
	i := hashKey(key) & mask
	for m.entries[i].key != NullKey {
		if m.entries[i].key == key {
			return &m.entries[i].value
		}
		i = (i + 1) & mask
	}
	return nil
}

// Get returns the value stored under key. The null key is never present.
func (m *HashMap) Get(key Key) (Value, bool) {
	if p := m.lookup(key); p != nil {
		return *p, true
	}
	return Value{}, false
}

// Set stores value under key, overwriting any previous value for the same
// key. It panics if key is NullKey.
func (m *HashMap) Set(key Key, value Value) {
	if key == NullKey {
		panic("data: NullKey is reserved for empty slots")
	}
	if m.count >= len(m.entries)/2 {
		m.grow()
	}
	if placeEntry(m.entries, key, value) {
		m.count++
	}
}

// placeEntry probes for key and writes value, returning true when a new slot
// was filled. entries must contain at least one empty slot.
func placeEntry(entries []hashEntry, key Key, value Value) bool {
	mask := uint64(len(entries) - 1)
	i := hashKey(key) & mask
	for entries[i].key != NullKey {
		if entries[i].key == key {
			entries[i].value = value
			return false
		}
		i = (i + 1) & mask
	}
	entries[i] = hashEntry{key: key, value: value}
	return true
}

func (m *HashMap) grow() {
	newCapacity := len(m.entries) * 2
	if newCapacity < len(m.entries) {
		panic("data: HashMap capacity overflow")
	}

	// The probe start depends on the capacity, so every entry has to be
	// probed into the new array from scratch.
	newEntries := make([]hashEntry, newCapacity)
	for _, e := range m.entries {
		if e.key != NullKey {
			placeEntry(newEntries, e.key, e.value)
		}
	}
	m.entries = newEntries
}

// Slot returns a pointer to the value stored under key, inserting a zero
// Value first if the key is absent. It panics if key is NullKey.
//
// The pointer is only valid until the next insert: growth moves the backing
// array.
func (m *HashMap) Slot(key Key) *Value {
	if p := m.lookup(key); p != nil {
		return p
	}
	m.Set(key, Value{})
	return m.lookup(key)
}

// Remove deletes key from the map. Entries between the removed slot and the
// next empty slot may have probed past it, so they are buffered, cleared and
// probed in again; no tombstones are left behind.
func (m *HashMap) Remove(key Key) {
	if key == NullKey {
		return
	}
	mask := uint64(len(m.entries) - 1)
	i := hashKey(key) & mask
	for m.entries[i].key != key {
		if m.entries[i].key == NullKey {
			return
		}
		i = (i + 1) & mask
	}

	var displaced []hashEntry
	for j := (i + 1) & mask; m.entries[j].key != NullKey; j = (j + 1) & mask {
		displaced = append(displaced, m.entries[j])
		m.entries[j] = hashEntry{}
	}

	m.entries[i] = hashEntry{}
	m.count--

	for _, e := range displaced {
		placeEntry(m.entries, e.key, e.value)
	}
}

// Exists reports whether key is present.
func (m *HashMap) Exists(key Key) bool {
	return m.lookup(key) != nil
}

// Clear empties the map. The capacity is kept.
func (m *HashMap) Clear() {
	if m.count == 0 {
		return
	}
	clear(m.entries)
	m.count = 0
}

// Count returns the number of entries.
func (m *HashMap) Count() int {
	return m.count
}

// IsEmpty reports whether the map holds no entries.
func (m *HashMap) IsEmpty() bool {
	return m.count == 0
}

// Capacity returns the slot count of the backing array.
func (m *HashMap) Capacity() int {
	return len(m.entries)
}

// Iter returns an iterator over all entries in backing-array order, which is
// neither insertion nor key order. Each call returns a fresh iterator.
// Mutating the map during iteration is undefined.
func (m *HashMap) Iter() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for _, e := range m.entries {
			if e.key == NullKey {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
