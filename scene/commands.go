package scene

import "github.com/plus3/vrekit/data"

// Commands buffers scene mutations so they can be applied after iteration.
// Structural changes invalidate pointers into the registries, so a system
// walking the scene queues its spawns and removals here and the owner flushes
// them once the walk is over.
type Commands struct {
	spawns  []Node
	removes []data.Id
	defers  []func()
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues a node spawn.
func (c *Commands) Spawn(node Node) {
	c.spawns = append(c.spawns, node)
}

// Remove queues a node removal.
func (c *Commands) Remove(id data.Id) {
	c.removes = append(c.removes, id)
}

// Defer queues a function to run at flush time, after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued operations to the scene and resets the buffer.
// Removals run before spawns so a frame that recycles nodes does not grow the
// registry needlessly.
func (c *Commands) Flush(s *Scene) {
	for _, id := range c.removes {
		s.RemoveNode(id)
	}
	for _, node := range c.spawns {
		s.Spawn(node)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
