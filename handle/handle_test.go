package handle_test

import (
	"fmt"
	"testing"

	"github.com/plus3/vrekit/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource struct {
	name   string
	closed bool
}

func TestReleaseRunsFinalizerOnce(t *testing.T) {
	finalized := 0
	r := handle.New(resource{name: "device"}, func(res *resource) {
		res.closed = true
		finalized++
	})

	require.True(t, r.Valid())
	assert.Equal(t, "device", r.Get().name)

	r.Release()

	assert.False(t, r.Valid())
	assert.Nil(t, r.Get())
	assert.Equal(t, 1, finalized)

	// A second release through the same handle is a no-op
	r.Release()
	assert.Equal(t, 1, finalized)
}

func TestCloneKeepsValueAlive(t *testing.T) {
	finalized := 0
	r := handle.New(resource{name: "scene"}, func(*resource) { finalized++ })

	clone := r.Clone()
	r.Release()

	assert.False(t, r.Valid())
	assert.Equal(t, 0, finalized, "a live clone must keep the value alive")
	require.True(t, clone.Valid())
	assert.Equal(t, "scene", clone.Get().name)

	clone.Release()
	assert.Equal(t, 1, finalized)
}

func TestClonesShareTheValue(t *testing.T) {
	r := handle.New(resource{name: "a"}, nil)
	defer r.Release()

	clone := r.Clone()
	defer clone.Release()

	clone.Get().name = "b"
	assert.Equal(t, "b", r.Get().name)
	assert.Same(t, r.Get(), clone.Get())
}

func TestNilFinalizer(t *testing.T) {
	r := handle.New(42, nil)
	assert.NotPanics(t, func() { r.Release() })
}

func TestZeroRefIsInvalid(t *testing.T) {
	var r handle.Ref[resource]

	assert.False(t, r.Valid())
	assert.Nil(t, r.Get())
	assert.NotPanics(t, func() { r.Release() })

	clone := r.Clone()
	assert.False(t, clone.Valid())
}

func TestManyClones(t *testing.T) {
	finalized := 0
	r := handle.New(resource{}, func(*resource) { finalized++ })

	clones := make([]handle.Ref[resource], 10)
	for i := range clones {
		clones[i] = r.Clone()
	}
	r.Release()

	for i := range clones {
		assert.Equal(t, 0, finalized)
		clones[i].Release()
	}
	assert.Equal(t, 1, finalized)
}

func ExampleRef() {
	scene := handle.New("forest scene", func(s *string) {
		fmt.Println("released:", *s)
	})

	view := scene.Clone()
	fmt.Println("viewing:", *view.Get())

	scene.Release()
	fmt.Println("still alive:", view.Valid())
	view.Release()

	// Output:
	// viewing: forest scene
	// still alive: true
	// released: forest scene
}
