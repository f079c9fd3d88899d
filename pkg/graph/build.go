// Package graph rebuilds the node set from document text and re-anchors
// the selection after a rewrite.
package graph

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// Build parses document text and flattens it into the ordered node set
// the tree view and the selection reconciler work on. Every container
// value becomes a node whose rows are its immediate children, and every
// scalar array element becomes a node with a single keyless row. A
// document that fails to parse yields no nodes.
func Build(doc []byte) []models.NodeData {
	value, err := document.DecodeValue(doc)
	if err != nil {
		return nil
	}

	b := &builder{}
	b.walk(value, models.Path{})
	return b.nodes
}

type builder struct {
	nodes []models.NodeData
}

func (b *builder) add(path models.Path, rows []models.Row) {
	b.nodes = append(b.nodes, models.NodeData{
		ID:   fmt.Sprintf("n%d", len(b.nodes)+1),
		Path: path.Clone(),
		Rows: rows,
	})
}

func (b *builder) walk(value any, path models.Path) {
	switch v := value.(type) {
	case *orderedmap.OrderedMap[string, any]:
		rows := make([]models.Row, 0, v.Len())
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			rows = append(rows, keyedRow(pair.Key, pair.Value))
		}
		b.add(path, rows)
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			if isContainer(pair.Value) {
				b.walk(pair.Value, path.Child(models.Key(pair.Key)))
			}
		}

	case []any:
		rows := make([]models.Row, 0, len(v))
		for _, elem := range v {
			rows = append(rows, keylessRow(elem))
		}
		b.add(path, rows)
		for i, elem := range v {
			b.walk(elem, path.Child(models.Index(i)))
		}

	default:
		// Scalar: the root of a scalar document, or an array element.
		b.add(path, []models.Row{{Value: v, Type: models.RowScalar}})
	}
}

func keyedRow(key string, value any) models.Row {
	row := models.Row{Key: key, HasKey: true, Type: rowType(value)}
	if row.Type == models.RowScalar {
		row.Value = value
	}
	return row
}

func keylessRow(value any) models.Row {
	row := models.Row{Type: rowType(value)}
	if row.Type == models.RowScalar {
		row.Value = value
	}
	return row
}

func rowType(value any) models.RowType {
	switch value.(type) {
	case *orderedmap.OrderedMap[string, any]:
		return models.RowObject
	case []any:
		return models.RowArray
	default:
		return models.RowScalar
	}
}

func isContainer(value any) bool {
	return rowType(value) != models.RowScalar
}
