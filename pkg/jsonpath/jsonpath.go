// Package jsonpath converts between the three shapes a node address takes:
// the models.Path used for traversal and patching, the display string shown
// to the user ($["key"][0]), and the key strings buger/jsonparser expects.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// Display renders a path in the bracketed address syntax: `$` for the
// root, string segments JSON-quoted, integer segments bare.
func Display(p models.Path) string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p {
		if seg.IsKey {
			fmt.Fprintf(&b, "[%s]", strconv.Quote(seg.Key))
		} else {
			fmt.Fprintf(&b, "[%d]", seg.Index)
		}
	}
	return b.String()
}

// Keys converts a path to jsonparser key form: object keys verbatim,
// array indexes as "[i]".
func Keys(p models.Path) []string {
	keys := make([]string, len(p))
	for i, seg := range p {
		if seg.IsKey {
			keys[i] = seg.Key
		} else {
			keys[i] = "[" + strconv.Itoa(seg.Index) + "]"
		}
	}
	return keys
}

// Parse inverts Display. It accepts the bracketed form ($["a"][0]) and, as
// CLI shorthand, a dotted form (a.0) where purely numeric segments are
// treated as array indexes.
func Parse(s string) (models.Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "$" {
		return models.Path{}, nil
	}
	if strings.HasPrefix(s, "$") {
		return parseBracketed(s[1:])
	}
	return parseDotted(s), nil
}

func parseBracketed(s string) (models.Path, error) {
	var p models.Path
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, fmt.Errorf("jsonpath: expected '[' at %q", s)
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("jsonpath: unterminated segment in %q", s)
		}
		inner := s[1:end]
		switch {
		case strings.HasPrefix(inner, `"`):
			key, err := strconv.Unquote(inner)
			if err != nil {
				return nil, fmt.Errorf("jsonpath: bad key segment %q: %w", inner, err)
			}
			p = append(p, models.Key(key))
		default:
			idx, err := strconv.Atoi(inner)
			if err != nil {
				return nil, fmt.Errorf("jsonpath: bad index segment %q: %w", inner, err)
			}
			p = append(p, models.Index(idx))
		}
		s = s[end+1:]
	}
	return p, nil
}

func parseDotted(s string) models.Path {
	var p models.Path
	for _, part := range strings.Split(s, ".") {
		if idx, err := strconv.Atoi(part); err == nil {
			p = append(p, models.Index(idx))
			continue
		}
		p = append(p, models.Key(part))
	}
	return p
}
