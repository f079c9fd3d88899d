package document

import (
	"encoding/json"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

func TestDecodeValuePreservesKeyOrder(t *testing.T) {
	v, err := DecodeValue([]byte(`{"z": 1, "a": {"y": 2, "b": 3}, "m": [1, "two", null]}`))
	if err != nil {
		t.Fatalf("DecodeValue failed: %v", err)
	}

	om, ok := v.(*orderedmap.OrderedMap[string, any])
	if !ok {
		t.Fatalf("root is %T, want ordered map", v)
	}

	var keys []string
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}

	nested, _ := om.Get("a")
	if _, ok := nested.(*orderedmap.OrderedMap[string, any]); !ok {
		t.Errorf("nested object is %T, want ordered map", nested)
	}
	arr, _ := om.Get("m")
	if got := arr.([]any); len(got) != 3 || got[0] != json.Number("1") || got[1] != "two" || got[2] != nil {
		t.Errorf("array = %#v", arr)
	}
}

func TestDecodeValueRejectsTrailing(t *testing.T) {
	if _, err := DecodeValue([]byte(`{"a":1} {"b":2}`)); err == nil {
		t.Error("trailing content should fail")
	}
	if _, err := DecodeValue([]byte(`42 x`)); err == nil {
		t.Error("trailing garbage should fail")
	}
}

func TestDecodeValueScalars(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`"s"`, "s"},
		{"42", json.Number("42")},
		{"true", true},
		{"null", nil},
	}
	for _, tt := range tests {
		v, err := DecodeValue([]byte(tt.input))
		if err != nil {
			t.Fatalf("DecodeValue(%q): %v", tt.input, err)
		}
		if v != tt.want {
			t.Errorf("DecodeValue(%q) = %#v, want %#v", tt.input, v, tt.want)
		}
	}
}

func TestEncodeValueRoundTrip(t *testing.T) {
	src := `{"z": 1, "a": "two", "list": [true, null, 3.5]}`
	v, err := DecodeValue([]byte(src))
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	out, err := EncodeValue(v, models.DefaultFormat(), 0)
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}

	want := "{\n  \"z\": 1,\n  \"a\": \"two\",\n  \"list\": [\n    true,\n    null,\n    3.5\n  ]\n}"
	if string(out) != want {
		t.Errorf("EncodeValue = %q, want %q", out, want)
	}
}

func TestEncodeValueNoHTMLEscaping(t *testing.T) {
	out, err := EncodeValue("<tag> & co", models.DefaultFormat(), 0)
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	if string(out) != `"<tag> & co"` {
		t.Errorf("EncodeValue = %s, want unescaped angle brackets", out)
	}
}
