package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

var (
	// ErrParse reports that the original document text does not parse.
	ErrParse = errors.New("document does not parse")
	// ErrPatch reports that edit computation failed.
	ErrPatch = errors.New("patch computation failed")
)

// Patch writes value at path inside doc and returns the new document text.
// The write is a byte splice of the region holding the addressed value:
// every byte outside that region is identical to the input, so unrelated
// formatting and unseen structure survive untouched. A missing final key is
// inserted rather than replaced.
//
// Patch either returns a complete new text or an error with doc untouched;
// callers never observe a partial rewrite.
func Patch(doc []byte, path models.Path, value any, format models.Format) ([]byte, error) {
	if _, err := DecodeValue(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	encoded, err := EncodeValue(value, format, len(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}

	if len(path) == 0 {
		out := encoded
		if bytes.HasSuffix(doc, []byte("\n")) && !bytes.HasSuffix(out, []byte("\n")) {
			out = append(out, '\n')
		}
		return out, nil
	}

	// Set splices in place over its input's backing array; hand it a copy
	// so the caller's text is never mutated, even on failure.
	out, err := jsonparser.Set(bytes.Clone(doc), encoded, jsonpath.Keys(path)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return out, nil
}
