// Package scene holds the data side of a renderable world: shader modules,
// materials, meshes and nodes, each kept in an id-keyed storage. The package
// knows nothing about graphics APIs; a renderer consumes the registries and
// uploads whatever it needs.
package scene

import (
	"iter"
	"weak"

	"github.com/kamstrup/intmap"
	"github.com/plus3/vrekit/data"
)

// Material pairs shader modules into a drawable pipeline description.
type Material struct {
	Name           string
	VertexShader   data.Id
	FragmentShader data.Id
}

// Mesh describes geometry. Uploading vertex data is the renderer's job, so
// only the description lives here.
type Mesh struct {
	Name        string
	VertexCount int
	IndexCount  int
}

// Scene is a collection of nodes, meshes, materials and shader modules that
// are rendered together. Everything is addressed by storage id; pointers into
// the registries follow the invalidation rules of data.Storage and must not
// be held across mutations.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	shaders   *data.Storage[ShaderModule]
	materials *data.Storage[Material]
	meshes    *data.Storage[Mesh]
	nodes     *data.Storage[Node]
	refs      *intmap.Map[data.Id, weak.Pointer[NodeRef]]
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		shaders:   data.NewStorage[ShaderModule](),
		materials: data.NewStorage[Material](),
		meshes:    data.NewStorage[Mesh](),
		nodes:     data.NewStorage[Node](data.WithCapacity(256)),
		refs:      intmap.New[data.Id, weak.Pointer[NodeRef]](256),
	}
}

// CreateMaterial registers a material and returns its id.
func (s *Scene) CreateMaterial(m Material) data.Id {
	return s.materials.Push(m)
}

// Material returns the material with the given id, or nil.
func (s *Scene) Material(id data.Id) *Material {
	return s.materials.Get(id)
}

// CreateMesh registers a mesh and returns its id.
func (s *Scene) CreateMesh(m Mesh) data.Id {
	return s.meshes.Push(m)
}

// Mesh returns the mesh with the given id, or nil.
func (s *Scene) Mesh(id data.Id) *Mesh {
	return s.meshes.Get(id)
}

// Materials returns an iterator over (id, material) pairs in storage order.
func (s *Scene) Materials() iter.Seq2[data.Id, *Material] {
	return s.materials.Iter()
}

// Meshes returns an iterator over (id, mesh) pairs in storage order.
func (s *Scene) Meshes() iter.Seq2[data.Id, *Mesh] {
	return s.meshes.Iter()
}

// Stats is a snapshot of the registry sizes, taken for tooling.
type Stats struct {
	NodeCount     int
	MeshCount     int
	MaterialCount int
	ShaderCount   int

	NodeCapacity   int
	NodeLoadFactor float64
}

// CollectStats takes a snapshot of the registry sizes.
func (s *Scene) CollectStats() Stats {
	capacity := s.nodes.Capacity()
	return Stats{
		NodeCount:      s.nodes.Count(),
		MeshCount:      s.meshes.Count(),
		MaterialCount:  s.materials.Count(),
		ShaderCount:    s.shaders.Count(),
		NodeCapacity:   capacity,
		NodeLoadFactor: float64(s.nodes.Count()) / float64(capacity),
	}
}

// Clear empties every registry and invalidates all outstanding node refs.
// Storage ids from before the clear are never assigned again.
func (s *Scene) Clear() {
	for id := range s.nodes.Iter() {
		s.invalidateRef(id)
	}
	s.refs.Clear()
	s.nodes.Clear()
	s.meshes.Clear()
	s.materials.Clear()
	s.shaders.Clear()
}
