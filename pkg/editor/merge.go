package editor

import (
	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// MergeBranch records how a candidate value was resolved against the
// existing document value.
type MergeBranch int

const (
	MergeReplace MergeBranch = iota
	MergeShallow
)

func (b MergeBranch) String() string {
	if b == MergeShallow {
		return "shallow-merge"
	}
	return "replace"
}

// MergeDecision is the value to write plus the branch that produced it.
type MergeDecision struct {
	Value  any
	Branch MergeBranch
}

// Resolve decides what to write at path: when both the existing value and
// the candidate are objects, the candidate is shallow-merged over the
// existing keys so nested structure never shown as rows survives; in
// every other case, and on any traversal doubt, the candidate replaces
// the existing value verbatim. Resolve never fails.
func Resolve(doc []byte, path models.Path, candidate any) MergeDecision {
	replace := MergeDecision{Value: candidate, Branch: MergeReplace}

	cand, ok := candidate.(*orderedmap.OrderedMap[string, any])
	if !ok {
		return replace
	}

	raw := doc
	if len(path) > 0 {
		value, dataType, _, err := jsonparser.Get(doc, jsonpath.Keys(path)...)
		if err != nil || dataType != jsonparser.Object {
			return replace
		}
		raw = value
	}

	decoded, err := document.DecodeValue(raw)
	if err != nil {
		return replace
	}
	existing, ok := decoded.(*orderedmap.OrderedMap[string, any])
	if !ok {
		return replace
	}

	// Existing keys keep their order; candidate values win on matching
	// keys; candidate-only keys append in candidate order.
	merged := orderedmap.New[string, any]()
	for pair := existing.Oldest(); pair != nil; pair = pair.Next() {
		if v, ok := cand.Get(pair.Key); ok {
			merged.Set(pair.Key, v)
		} else {
			merged.Set(pair.Key, pair.Value)
		}
	}
	for pair := cand.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := existing.Get(pair.Key); !ok {
			merged.Set(pair.Key, pair.Value)
		}
	}

	return MergeDecision{Value: merged, Branch: MergeShallow}
}
