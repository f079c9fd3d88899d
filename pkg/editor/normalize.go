// Package editor implements the node-edit pipeline: flattening a node's
// rows into editable text, reparsing edited text into a value, deciding
// between shallow merge and replacement, and the modal session that drives
// a save through the document service.
package editor

import (
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// Normalize flattens a node's rows into the canonical editable text.
// First match wins: no rows yields "{}"; a single keyless row yields that
// row's value as raw text; otherwise keyed scalar rows fold into an
// object, rendered with two-space indentation in row order. Rows typed
// array or object never contribute a key to the folded object.
func Normalize(rows []models.Row) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && !rows[0].HasKey {
		return rawText(rows[0].Value)
	}

	om := orderedmap.New[string, any]()
	for _, row := range rows {
		if row.Type != models.RowScalar || !row.HasKey {
			continue
		}
		om.Set(row.Key, row.Value)
	}

	out, err := json.MarshalIndent(om, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// rawText renders a scalar the way the user typed it: strings without
// JSON quoting, everything else as its literal.
func rawText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		out, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(out)
	}
}
