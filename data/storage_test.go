package data_test

import (
	"fmt"
	"testing"

	"github.com/plus3/vrekit/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoragePushGet(t *testing.T) {
	s := data.NewStorage[payload]()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Count())

	i1 := s.Push(payload{1, 2})
	i2 := s.Push(payload{3, 4})
	i3 := s.Push(payload{5, 6})

	assert.Equal(t, data.Id(1), i1)
	assert.Equal(t, data.Id(2), i2)
	assert.Equal(t, data.Id(3), i3)

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 3, s.Count())

	v1 := s.Get(i1)
	require.NotNil(t, v1)
	assert.Equal(t, payload{1, 2}, *v1)

	v2 := s.Get(i2)
	require.NotNil(t, v2)
	assert.Equal(t, payload{3, 4}, *v2)

	v3 := s.Get(i3)
	require.NotNil(t, v3)
	assert.Equal(t, payload{5, 6}, *v3)

	assert.Nil(t, s.Get(999))
	assert.Nil(t, s.Get(data.NullId))
}

func TestStorageMustGet(t *testing.T) {
	s := data.NewStorage[payload]()
	id := s.Push(payload{7, 8})

	v := s.MustGet(id)
	assert.Equal(t, payload{7, 8}, *v)

	// Editing through the pointer sticks
	v.A = 9
	assert.Equal(t, 9, s.MustGet(id).A)

	assert.Panics(t, func() { s.MustGet(999) })
	assert.Panics(t, func() { s.MustGet(data.NullId) })
}

// Ids are strictly increasing and never handed out twice, no matter what is
// removed in between.
func TestStorageIdsNeverReused(t *testing.T) {
	s := data.NewStorage[string]()

	i1 := s.Push("a")
	i2 := s.Push("b")
	i3 := s.Push("c")
	assert.Equal(t, data.Id(1), i1)
	assert.Equal(t, data.Id(2), i2)
	assert.Equal(t, data.Id(3), i3)

	s.Remove(i2)

	i4 := s.Push("d")
	assert.Equal(t, data.Id(4), i4)

	assert.Nil(t, s.Get(i2))
	require.NotNil(t, s.Get(i1))
	assert.Equal(t, "a", *s.Get(i1))
	require.NotNil(t, s.Get(i3))
	assert.Equal(t, "c", *s.Get(i3))
	assert.Equal(t, "d", *s.Get(i4))
}

func TestStorageClearKeepsCounter(t *testing.T) {
	s := data.NewStorage[string]()
	s.Push("a")
	s.Push("b")

	s.Clear()
	assert.Equal(t, 0, s.Count())

	id := s.Push("c")
	assert.Equal(t, data.Id(3), id, "ids from before the clear must not come back")
}

func TestStorageRemove(t *testing.T) {
	s := data.NewStorage[payload]()

	var ids []data.Id
	for i := 1; i <= 10; i++ {
		ids = append(ids, s.Push(payload{A: i}))
	}

	for _, id := range ids[:5] {
		s.Remove(id)
	}

	assert.Equal(t, 5, s.Count())
	for i, id := range ids {
		if i < 5 {
			assert.False(t, s.Exists(id))
			continue
		}
		require.True(t, s.Exists(id))
		assert.Equal(t, i+1, s.Get(id).A)
	}

	// Removing an absent id is a no-op
	s.Remove(ids[0])
	assert.Equal(t, 5, s.Count())
}

func TestStorageIter(t *testing.T) {
	s := data.NewStorage[payload]()
	for i := 1; i <= 3; i++ {
		s.Push(payload{A: i})
	}

	// Values are editable through the yielded pointers
	for _, v := range s.Iter() {
		v.A++
	}

	assert.Equal(t, 2, s.MustGet(1).A)
	assert.Equal(t, 3, s.MustGet(2).A)
	assert.Equal(t, 4, s.MustGet(3).A)

	seen := 0
	for id, v := range s.Iter() {
		seen++
		assert.True(t, id >= 1 && id <= 3)
		assert.Equal(t, int(id)+1, v.A)
	}
	assert.Equal(t, 3, seen)
}

// Push enough values to grow the hash index repeatedly, interleaved with
// removals, and check nothing is lost or resurrected.
func TestStorageChurn(t *testing.T) {
	s := data.NewStorage[int]()

	live := make(map[data.Id]int)
	for i := 0; i < 500; i++ {
		id := s.Push(i)
		live[id] = i
		if i%3 == 0 {
			s.Remove(id)
			delete(live, id)
		}
	}

	assert.Equal(t, len(live), s.Count())
	for id, want := range live {
		p := s.Get(id)
		require.NotNil(t, p, "id %d lost", id)
		assert.Equal(t, want, *p)
	}
}

func BenchmarkStoragePush(b *testing.B) {
	s := data.NewStorage[payload]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(payload{A: i})
	}
}

func BenchmarkStorageGet(b *testing.B) {
	s := data.NewStorage[payload]()
	const n = 1 << 16
	for i := 0; i < n; i++ {
		s.Push(payload{A: i})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Get(data.Id(i%n + 1))
	}
}

// ExampleStorage demonstrates the registry pattern: the storage owns the
// values, callers keep only ids.
func ExampleStorage() {
	shaders := data.NewStorage[string]()

	vert := shaders.Push("triangle.vert.spv")
	frag := shaders.Push("triangle.frag.spv")
	fmt.Println("vertex shader id:", vert)
	fmt.Println("fragment shader id:", frag)

	shaders.Remove(vert)
	next := shaders.Push("skybox.vert.spv")
	fmt.Println("next id:", next)

	// Output:
	// vertex shader id: 1
	// fragment shader id: 2
	// next id: 3
}
