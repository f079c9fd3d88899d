package tui

import (
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// TreeModel manages ONLY the state of the node tree - no rendering.
// It is also the selection provider the edit session consumes: the cursor
// row is the externally-selected node.
type TreeModel struct {
	nodes       []models.NodeData
	collapsed   map[string]bool // keyed by path display string
	visible     []int           // indexes into nodes, in display order
	cursor      int             // index into visible
	expandDepth int
}

func NewTreeModel(expandDepth int) *TreeModel {
	return &TreeModel{
		collapsed:   map[string]bool{},
		expandDepth: expandDepth,
	}
}

// SetNodes swaps the node set after a rebuild. Collapse state keyed by
// path survives the swap; the cursor is clamped.
func (t *TreeModel) SetNodes(nodes []models.NodeData) {
	t.nodes = nodes
	for _, n := range nodes {
		key := jsonpath.Display(n.Path)
		if _, seen := t.collapsed[key]; !seen {
			t.collapsed[key] = len(n.Path) >= t.expandDepth
		}
	}
	t.refreshVisible()
}

func (t *TreeModel) refreshVisible() {
	t.visible = t.visible[:0]
	for i, n := range t.nodes {
		if t.ancestorCollapsed(n.Path) {
			continue
		}
		t.visible = append(t.visible, i)
	}
	if t.cursor >= len(t.visible) {
		t.cursor = len(t.visible) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TreeModel) ancestorCollapsed(path models.Path) bool {
	for i := 0; i < len(path); i++ {
		if t.collapsed[jsonpath.Display(path[:i])] {
			return true
		}
	}
	return false
}

func (t *TreeModel) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *TreeModel) MoveDown() {
	if t.cursor < len(t.visible)-1 {
		t.cursor++
	}
}

// ToggleCollapse flips the cursor node's expansion.
func (t *TreeModel) ToggleCollapse() {
	node, ok := t.CurrentSelection()
	if !ok {
		return
	}
	key := jsonpath.Display(node.Path)
	t.collapsed[key] = !t.collapsed[key]
	t.refreshVisible()
}

func (t *TreeModel) VisibleCount() int { return len(t.visible) }
func (t *TreeModel) CursorIndex() int  { return t.cursor }

func (t *TreeModel) visibleNode(i int) (models.NodeData, bool) {
	if i < 0 || i >= len(t.visible) {
		return models.NodeData{}, false
	}
	return t.nodes[t.visible[i]], true
}

// CurrentSelection returns the node under the cursor.
func (t *TreeModel) CurrentSelection() (models.NodeData, bool) {
	return t.visibleNode(t.cursor)
}

// AllNodes returns the rebuilt node set.
func (t *TreeModel) AllNodes() []models.NodeData {
	return t.nodes
}

// SetSelection moves the cursor to the given node, expanding collapsed
// ancestors so it is actually reachable.
func (t *TreeModel) SetSelection(node models.NodeData) {
	for i := 0; i < len(node.Path); i++ {
		key := jsonpath.Display(node.Path[:i])
		if t.collapsed[key] {
			t.collapsed[key] = false
		}
	}
	t.refreshVisible()
	for vi, ni := range t.visible {
		if t.nodes[ni].Path.Equal(node.Path) {
			t.cursor = vi
			return
		}
	}
}
