package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// DecodeValue parses JSON text into the value representation used across
// the editor: objects become *orderedmap.OrderedMap[string, any] so key
// order survives a decode/encode round trip, arrays become []any, numbers
// stay json.Number. The whole input must be a single value; trailing
// content is an error.
func DecodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("document: trailing content after value")
	}
	return v, nil
}

func decodeNext(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		om := orderedmap.New[string, any]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("document: object key is not a string")
			}
			val, err := decodeNext(dec)
			if err != nil {
				return nil, err
			}
			om.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return om, nil

	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeNext(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("document: unexpected delimiter %v", delim)
}

// EncodeValue renders a value for insertion at the given depth inside a
// document. Lines after the first are prefixed so the fragment lines up
// with the surrounding indentation; the first line carries no prefix
// because it is spliced at the value position.
func EncodeValue(v any, format models.Format, depth int) ([]byte, error) {
	indent := format.Indent
	if indent <= 0 {
		indent = models.DefaultFormat().Indent
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(strings.Repeat(" ", indent*depth), strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline the spliced fragment must not carry.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
