package data

type valueKind uint8

const (
	valueNone valueKind = iota
	valueIndex
	valueExtern
)

// Value is the word-sized payload of a HashMap slot. It holds either a dense
// sequence index or an opaque external reference, and remembers which, so a
// slot written as one cannot silently be read back as the other.
type Value struct {
	kind   valueKind
	index  uint64
	extern any
}

// Index wraps a dense sequence index as a Value.
func Index(i uint64) Value {
	return Value{kind: valueIndex, index: i}
}

// Extern wraps an external reference as a Value. The map never owns the
// referenced data; keeping it alive is the caller's problem.
func Extern(ref any) Value {
	return Value{kind: valueExtern, extern: ref}
}

// AsIndex returns the stored index. ok is false when the value holds no index.
func (v Value) AsIndex() (index uint64, ok bool) {
	return v.index, v.kind == valueIndex
}

// AsExtern returns the stored reference. ok is false when the value holds no
// reference.
func (v Value) AsExtern() (ref any, ok bool) {
	return v.extern, v.kind == valueExtern
}

// IsZero reports whether the value was never assigned.
func (v Value) IsZero() bool {
	return v.kind == valueNone
}
