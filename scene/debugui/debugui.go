// Package debugui provides immediate-mode inspection panels for a running
// scene using Dear ImGui. The panels read the scene's registries directly and
// never mutate them; they are meant to be rendered from inside an active ImGui
// frame.
package debugui

import (
	"github.com/plus3/vrekit/engine"
	"github.com/plus3/vrekit/scene"
)

// Overlay bundles the standard inspection panels into a single render call.
type Overlay struct {
	Browser  NodeBrowserComponent
	Registry RegistryViewerComponent
	Perf     PerformanceStatsComponent
}

// NewOverlay creates an overlay with default panel settings.
func NewOverlay() *Overlay {
	return &Overlay{
		Browser:  NewNodeBrowserComponent(50),
		Registry: NewRegistryViewerComponent(),
		Perf:     NewPerformanceStatsComponent(120),
	}
}

// Render draws all panels. Pass nil stats to omit the system timing table.
func (o *Overlay) Render(s *scene.Scene, stats *engine.EngineStats, deltaTime float32) {
	o.Browser.Render(s)
	o.Registry.Render(s)
	o.Perf.Render(s, stats, deltaTime)
}
