package debugui

import (
	"github.com/plus3/vrekit/data"
)

type NodeBrowserComponent struct {
	cache           *NodeBrowserCache
	selectedNodeId  data.Id
	filterText      string
	maxNodesPerPage int
	currentPage     int
}

type RegistryViewerComponent struct {
	showShaderCode bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
