package scene

import (
	"fmt"
	"io/fs"
	"iter"

	"github.com/plus3/vrekit/data"
)

// ShaderStage tells the renderer which pipeline stage a module feeds.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderStage(%d)", uint8(s))
	}
}

// ShaderModule holds compiled shader code until a renderer claims it.
type ShaderModule struct {
	Name  string
	Stage ShaderStage
	Code  []byte
}

// LoadShaderModule reads compiled shader code from fsys and registers it,
// returning the id of the new module.
func (s *Scene) LoadShaderModule(fsys fs.FS, path string, stage ShaderStage) (data.Id, error) {
	code, err := fs.ReadFile(fsys, path)
	if err != nil {
		return data.NullId, fmt.Errorf("scene: load shader module %q: %w", path, err)
	}
	return s.shaders.Push(ShaderModule{Name: path, Stage: stage, Code: code}), nil
}

// RegisterShaderModule registers an already-loaded module and returns its id.
func (s *Scene) RegisterShaderModule(m ShaderModule) data.Id {
	return s.shaders.Push(m)
}

// Shader returns the module with the given id, or nil.
func (s *Scene) Shader(id data.Id) *ShaderModule {
	return s.shaders.Get(id)
}

// Shaders returns an iterator over (id, module) pairs in storage order.
func (s *Scene) Shaders() iter.Seq2[data.Id, *ShaderModule] {
	return s.shaders.Iter()
}
