package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vrekit/data"
	"github.com/plus3/vrekit/scene"
)

type NodeInfo struct {
	ID       data.Id
	Name     string
	Mesh     data.Id
	Material data.Id
	X, Y, Z  float32
}

type NodeBrowserCache struct {
	nodes         []NodeInfo
	lastNodeCount int
	sortColumn    int
	sortAscending bool
}

func NewNodeBrowserComponent(maxNodesPerPage int) NodeBrowserComponent {
	return NodeBrowserComponent{
		cache: &NodeBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxNodesPerPage: maxNodesPerPage,
	}
}

func (nb *NodeBrowserComponent) Render(s *scene.Scene) {
	if !imgui.BeginV("Node Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	nb.rebuildCacheIfNeeded(s)

	imgui.InputTextWithHint("##search", "Search...", &nb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		nb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("NodeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Node ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Mesh / Material")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			nb.cache.sortColumn = int(spec.ColumnIndex())
			nb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			nb.sortNodes()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredNodes := nb.getFilteredNodes()

		startIdx := nb.currentPage * nb.maxNodesPerPage
		endIdx := startIdx + nb.maxNodesPerPage
		if endIdx > len(filteredNodes) {
			endIdx = len(filteredNodes)
		}

		for i := startIdx; i < endIdx; i++ {
			node := filteredNodes[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := nb.selectedNodeId == node.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", node.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				nb.selectedNodeId = node.ID
			}

			imgui.TableNextColumn()
			imgui.Text(node.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.1f, %.1f, %.1f)", node.X, node.Y, node.Z))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", node.Mesh, node.Material))
		}

		imgui.EndTable()
	}

	filteredNodes := nb.getFilteredNodes()

	if len(filteredNodes) > nb.maxNodesPerPage {
		totalPages := (len(filteredNodes) + nb.maxNodesPerPage - 1) / nb.maxNodesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d nodes)", nb.currentPage+1, totalPages, len(filteredNodes)))
		imgui.SameLine()
		if imgui.Button("Prev") && nb.currentPage > 0 {
			nb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && nb.currentPage < totalPages-1 {
			nb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d nodes", len(filteredNodes)))
	}

	imgui.End()
}

func (nb *NodeBrowserComponent) rebuildCacheIfNeeded(s *scene.Scene) {
	currentNodeCount := s.NodeCount()
	if nb.cache.lastNodeCount != currentNodeCount {
		nb.cache.nodes = nil
		nb.cache.lastNodeCount = currentNodeCount
	}

	if nb.cache.nodes == nil {
		nb.rebuildCache(s)
	}
}

func (nb *NodeBrowserComponent) rebuildCache(s *scene.Scene) {
	nb.cache.nodes = make([]NodeInfo, 0, 1024)

	for id, node := range s.Nodes() {
		nb.cache.nodes = append(nb.cache.nodes, NodeInfo{
			ID:       id,
			Name:     node.Name,
			Mesh:     node.Mesh,
			Material: node.Material,
			X:        node.Transform[12],
			Y:        node.Transform[13],
			Z:        node.Transform[14],
		})
	}

	nb.sortNodes()
}

func (nb *NodeBrowserComponent) sortNodes() {
	sort.Slice(nb.cache.nodes, func(i, j int) bool {
		a, b := nb.cache.nodes[i], nb.cache.nodes[j]
		var less bool

		switch nb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Name < b.Name
		case 2:
			less = a.X < b.X
		case 3:
			less = a.Mesh < b.Mesh
		default:
			less = a.ID < b.ID
		}

		if !nb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (nb *NodeBrowserComponent) getFilteredNodes() []NodeInfo {
	if nb.filterText == "" {
		return nb.cache.nodes
	}

	filtered := make([]NodeInfo, 0, len(nb.cache.nodes))
	filterLower := strings.ToLower(nb.filterText)

	for _, node := range nb.cache.nodes {
		idStr := fmt.Sprintf("%d", node.ID)
		nameStr := strings.ToLower(node.Name)

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(nameStr, filterLower) {
			continue
		}

		filtered = append(filtered, node)
	}

	return filtered
}

func (nb *NodeBrowserComponent) GetSelectedNode() data.Id {
	return nb.selectedNodeId
}
