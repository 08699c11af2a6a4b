package scene

import (
	"iter"
	"weak"

	"github.com/plus3/vrekit/data"
)

// Transform is a column-major 4x4 matrix.
type Transform [16]float32

// IdentityTransform returns the identity matrix.
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns the matrix translating by (x, y, z).
func Translation(x, y, z float32) Transform {
	t := IdentityTransform()
	t[12], t[13], t[14] = x, y, z
	return t
}

// Node places a mesh with a material somewhere in the scene.
type Node struct {
	Name      string
	Transform Transform
	Mesh      data.Id
	Material  data.Id
}

// NodeRef is a stable reference to a node. Unlike a raw id, it is invalidated
// in place when the node is removed, so a holder can tell a dead node from a
// recycled lookup.
type NodeRef struct {
	Id    data.Id
	scene *Scene
}

// Spawn adds a node to the scene and returns its id.
func (s *Scene) Spawn(node Node) data.Id {
	return s.nodes.Push(node)
}

// Node returns the node with the given id, or nil. The pointer is valid only
// until the next mutation of the node registry.
func (s *Scene) Node(id data.Id) *Node {
	return s.nodes.Get(id)
}

// Nodes returns an iterator over (id, node) pairs in storage order.
func (s *Scene) Nodes() iter.Seq2[data.Id, *Node] {
	return s.nodes.Iter()
}

// NodeCount returns the number of nodes.
func (s *Scene) NodeCount() int {
	return s.nodes.Count()
}

// CreateNodeRef returns a stable reference to the node, reusing a live ref if
// one was already handed out. Returns nil when the node does not exist.
func (s *Scene) CreateNodeRef(id data.Id) *NodeRef {
	if !s.nodes.Exists(id) {
		return nil
	}

	if weakPtr, ok := s.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Weak pointer is dead, drop it
		s.refs.Del(id)
	}

	ref := &NodeRef{Id: id, scene: s}
	s.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveNodeRef returns the id a ref points at, or false when the node has
// been removed.
func (s *Scene) ResolveNodeRef(ref *NodeRef) (data.Id, bool) {
	if ref == nil || ref.Id == data.NullId {
		return data.NullId, false
	}
	return ref.Id, true
}

// RemoveNode deletes a node and invalidates any ref handed out for it.
// Removing an absent id is a no-op.
func (s *Scene) RemoveNode(id data.Id) {
	s.invalidateRef(id)
	s.nodes.Remove(id)
}

func (s *Scene) invalidateRef(id data.Id) {
	weakPtr, ok := s.refs.Get(id)
	if !ok {
		return
	}
	if ref := weakPtr.Value(); ref != nil {
		ref.Id = data.NullId
		ref.scene = nil
	}
	s.refs.Del(id)
}
