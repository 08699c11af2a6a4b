package scene_test

import (
	"fmt"
	"testing"

	"github.com/plus3/vrekit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsSpawn(t *testing.T) {
	s := scene.New()
	cmd := scene.NewCommands()

	cmd.Spawn(scene.Node{Name: "a"})
	cmd.Spawn(scene.Node{Name: "b"})
	assert.Equal(t, 0, s.NodeCount(), "spawns are deferred until flush")

	cmd.Flush(s)
	assert.Equal(t, 2, s.NodeCount())
}

func TestCommandsRemove(t *testing.T) {
	s := scene.New()
	id := s.Spawn(scene.Node{Name: "doomed"})

	cmd := scene.NewCommands()
	cmd.Remove(id)
	require.NotNil(t, s.Node(id))

	cmd.Flush(s)
	assert.Nil(t, s.Node(id))
}

func TestCommandsRemovalsBeforeSpawns(t *testing.T) {
	s := scene.New()
	old := s.Spawn(scene.Node{Name: "old"})

	cmd := scene.NewCommands()
	cmd.Spawn(scene.Node{Name: "new"})
	cmd.Remove(old)
	cmd.Flush(s)

	assert.Equal(t, 1, s.NodeCount())
	assert.Nil(t, s.Node(old))
}

func TestCommandsDeferRunsAfterStructuralChanges(t *testing.T) {
	s := scene.New()
	cmd := scene.NewCommands()

	var seen int
	cmd.Spawn(scene.Node{Name: "a"})
	cmd.Defer(func() { seen = s.NodeCount() })
	cmd.Flush(s)

	assert.Equal(t, 1, seen)
}

func TestCommandsFlushResets(t *testing.T) {
	s := scene.New()
	cmd := scene.NewCommands()

	cmd.Spawn(scene.Node{Name: "once"})
	cmd.Flush(s)
	cmd.Flush(s)

	assert.Equal(t, 1, s.NodeCount(), "a flushed buffer must not replay")
}

func ExampleCommands() {
	s := scene.New()
	keep := s.Spawn(scene.Node{Name: "keep"})
	drop := s.Spawn(scene.Node{Name: "drop"})

	cmd := scene.NewCommands()
	for id := range s.Nodes() {
		if id == drop {
			cmd.Remove(id)
		}
	}
	cmd.Flush(s)

	fmt.Println(s.NodeCount(), s.Node(keep).Name)
	// Output: 1 keep
}
