package scene_test

import (
	"testing"
	"testing/fstest"

	"github.com/plus3/vrekit/data"
	"github.com/plus3/vrekit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"shaders/triangle.vert.spv": &fstest.MapFile{Data: []byte{0x03, 0x02, 0x23, 0x07}},
		"shaders/triangle.frag.spv": &fstest.MapFile{Data: []byte{0x03, 0x02, 0x23, 0x07, 0x00}},
	}
}

func TestLoadShaderModule(t *testing.T) {
	s := scene.New()

	vert, err := s.LoadShaderModule(testAssets(), "shaders/triangle.vert.spv", scene.StageVertex)
	require.NoError(t, err)
	assert.NotEqual(t, data.NullId, vert)

	module := s.Shader(vert)
	require.NotNil(t, module)
	assert.Equal(t, "shaders/triangle.vert.spv", module.Name)
	assert.Equal(t, scene.StageVertex, module.Stage)
	assert.Len(t, module.Code, 4)
}

func TestLoadShaderModuleMissingFile(t *testing.T) {
	s := scene.New()

	id, err := s.LoadShaderModule(testAssets(), "shaders/missing.spv", scene.StageFragment)
	assert.Error(t, err)
	assert.Equal(t, data.NullId, id)
	assert.ErrorContains(t, err, "missing.spv")
}

func TestMaterialRegistry(t *testing.T) {
	s := scene.New()

	vert, err := s.LoadShaderModule(testAssets(), "shaders/triangle.vert.spv", scene.StageVertex)
	require.NoError(t, err)
	frag, err := s.LoadShaderModule(testAssets(), "shaders/triangle.frag.spv", scene.StageFragment)
	require.NoError(t, err)

	mat := s.CreateMaterial(scene.Material{
		Name:           "flat",
		VertexShader:   vert,
		FragmentShader: frag,
	})

	m := s.Material(mat)
	require.NotNil(t, m)
	assert.Equal(t, "flat", m.Name)
	assert.Equal(t, vert, m.VertexShader)
	assert.Equal(t, frag, m.FragmentShader)

	assert.Nil(t, s.Material(999))
}

func TestMeshRegistry(t *testing.T) {
	s := scene.New()

	mesh := s.CreateMesh(scene.Mesh{Name: "quad", VertexCount: 4, IndexCount: 6})
	m := s.Mesh(mesh)
	require.NotNil(t, m)
	assert.Equal(t, "quad", m.Name)
	assert.Equal(t, 4, m.VertexCount)
}

func TestShaderStageString(t *testing.T) {
	assert.Equal(t, "vertex", scene.StageVertex.String())
	assert.Equal(t, "fragment", scene.StageFragment.String())
}

func TestCollectStats(t *testing.T) {
	s := scene.New()

	mesh := s.CreateMesh(scene.Mesh{Name: "quad"})
	mat := s.CreateMaterial(scene.Material{Name: "flat"})
	for i := 0; i < 10; i++ {
		s.Spawn(scene.Node{Name: "node", Mesh: mesh, Material: mat})
	}

	stats := s.CollectStats()
	assert.Equal(t, 10, stats.NodeCount)
	assert.Equal(t, 1, stats.MeshCount)
	assert.Equal(t, 1, stats.MaterialCount)
	assert.Equal(t, 0, stats.ShaderCount)
	assert.Greater(t, stats.NodeCapacity, 0)
	assert.InDelta(t, float64(10)/float64(stats.NodeCapacity), stats.NodeLoadFactor, 1e-9)
}

func TestSceneClear(t *testing.T) {
	s := scene.New()

	mesh := s.CreateMesh(scene.Mesh{Name: "quad"})
	id := s.Spawn(scene.Node{Name: "a", Mesh: mesh})
	ref := s.CreateNodeRef(id)
	require.NotNil(t, ref)

	s.Clear()

	assert.Equal(t, 0, s.NodeCount())
	assert.Nil(t, s.Mesh(mesh))
	_, ok := s.ResolveNodeRef(ref)
	assert.False(t, ok, "clear must invalidate outstanding refs")

	// Ids are not recycled across a clear
	next := s.Spawn(scene.Node{Name: "b"})
	assert.Greater(t, next, id)
}
