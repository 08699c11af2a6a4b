package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vrekit/scene"
)

func NewRegistryViewerComponent() RegistryViewerComponent {
	return RegistryViewerComponent{}
}

func (rv *RegistryViewerComponent) Render(s *scene.Scene) {
	if !imgui.BeginV("Registries", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.CollectStats()

	imgui.Text(fmt.Sprintf("Nodes: %d / %d (%.0f%% load)", stats.NodeCount, stats.NodeCapacity, stats.NodeLoadFactor*100))
	imgui.Text(fmt.Sprintf("Meshes: %d", stats.MeshCount))
	imgui.Text(fmt.Sprintf("Materials: %d", stats.MaterialCount))
	imgui.Text(fmt.Sprintf("Shader Modules: %d", stats.ShaderCount))

	imgui.Separator()

	if imgui.TreeNodeStr("Meshes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("MeshTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Vertices / Indices")
			imgui.TableHeadersRow()

			for id, mesh := range s.Meshes() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", id))
				imgui.TableNextColumn()
				imgui.Text(mesh.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d / %d", mesh.VertexCount, mesh.IndexCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Materials") {
		for id, mat := range s.Materials() {
			imgui.BulletText(fmt.Sprintf("%d %s (vert=%d frag=%d)", id, mat.Name, mat.VertexShader, mat.FragmentShader))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Shader Modules") {
		imgui.Checkbox("Show code size", &rv.showShaderCode)
		for id, shader := range s.Shaders() {
			if rv.showShaderCode {
				imgui.BulletText(fmt.Sprintf("%d %s [%s] %d bytes", id, shader.Name, shader.Stage, len(shader.Code)))
			} else {
				imgui.BulletText(fmt.Sprintf("%d %s [%s]", id, shader.Name, shader.Stage))
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}
