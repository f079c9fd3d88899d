package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// RenderTree renders the visible nodes with the cursor row highlighted,
// windowed so the cursor always stays on screen.
func RenderTree(t *TreeModel, width, height int) string {
	if len(t.visible) == 0 {
		return helpStyle.Render("empty document")
	}

	start := 0
	if t.cursor >= height {
		start = t.cursor - height + 1
	}
	end := start + height
	if end > len(t.visible) {
		end = len(t.visible)
	}

	var b strings.Builder
	for vi := start; vi < end; vi++ {
		node, _ := t.visibleNode(vi)
		line := treeLine(t, node)
		if len(line) > width && width > 1 {
			line = line[:width-1] + "…"
		}
		if vi == t.cursor {
			line = cursorLineStyle.Render(line)
		}
		b.WriteString(line)
		if vi < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func treeLine(t *TreeModel, node models.NodeData) string {
	indent := strings.Repeat("  ", len(node.Path))

	marker := "  "
	if t.hasChildNodes(node) {
		if t.collapsed[jsonpath.Display(node.Path)] {
			marker = "▸ "
		} else {
			marker = "▾ "
		}
	}

	return indent + marker + nodeLabel(node) + " " + helpStyle.Render(nodeSummary(node))
}

func nodeLabel(node models.NodeData) string {
	if len(node.Path) == 0 {
		return keyStyle.Render("$")
	}
	seg := node.Path[len(node.Path)-1]
	if seg.IsKey {
		return keyStyle.Render(seg.Key)
	}
	return keyStyle.Render("[" + strconv.Itoa(seg.Index) + "]")
}

// nodeSummary is the compact one-line preview shown next to a label.
func nodeSummary(node models.NodeData) string {
	if len(node.Rows) == 1 && !node.Rows[0].HasKey {
		return valueStyle.Render(scalarPreview(node.Rows[0].Value))
	}

	keyless := true
	for _, r := range node.Rows {
		if r.HasKey {
			keyless = false
			break
		}
	}
	if keyless {
		return fmt.Sprintf("[%d]", len(node.Rows))
	}
	return fmt.Sprintf("{%d}", len(node.Rows))
}

func scalarPreview(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		if len(t) > 24 {
			t = t[:24] + "…"
		}
		return strconv.Quote(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// hasChildNodes reports whether any node in the set sits directly under
// this one.
func (t *TreeModel) hasChildNodes(node models.NodeData) bool {
	for _, n := range t.nodes {
		if len(n.Path) == len(node.Path)+1 && n.Path[:len(node.Path)].Equal(node.Path) {
			return true
		}
	}
	return false
}
