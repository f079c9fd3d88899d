package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetNestedValue(t *testing.T) {
	path := writeTempJSON(t, `{"users": [{"name": "ada"}]}`)

	cmd := NewGetCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runGet(cmd, []string{path, `$["users"][0]["name"]`}); err != nil {
		t.Fatalf("runGet: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "ada" {
		t.Errorf("get output = %q, want %q", got, "ada")
	}
}

func TestGetDottedShorthand(t *testing.T) {
	path := writeTempJSON(t, `{"users": [{"name": "ada"}]}`)

	cmd := NewGetCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runGet(cmd, []string{path, "users.0.name"}); err != nil {
		t.Fatalf("runGet: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "ada" {
		t.Errorf("get output = %q, want %q", got, "ada")
	}
}

func TestGetMissingPath(t *testing.T) {
	path := writeTempJSON(t, `{"a": 1}`)

	cmd := NewGetCommand()
	cmd.SetOut(&bytes.Buffer{})

	if err := runGet(cmd, []string{path, "b"}); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestSetPreservesSiblingFormatting(t *testing.T) {
	doc := "{\"a\":   1, \"b\": 2}"
	path := writeTempJSON(t, doc)

	setStdout = false
	setReplace = false
	cmd := NewSetCommand()
	cmd.SetOut(&bytes.Buffer{})

	if err := runSet(cmd, []string{path, "b", "3"}); err != nil {
		t.Fatalf("runSet: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{\"a\":   1, \"b\": 3}" {
		t.Errorf("file after set = %s", got)
	}
}

func TestSetMergesObjects(t *testing.T) {
	path := writeTempJSON(t, `{"a": {"x": 1, "y": 2}}`)

	setStdout = true
	setReplace = false
	defer func() { setStdout = false }()

	cmd := NewSetCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runSet(cmd, []string{path, "a", `{"y": 9}`}); err != nil {
		t.Fatalf("runSet: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"x": 1`) || !strings.Contains(out, `"y": 9`) {
		t.Errorf("merge result = %s", out)
	}
}

func TestSetReplaceSkipsMerge(t *testing.T) {
	path := writeTempJSON(t, `{"a": {"x": 1}}`)

	setStdout = true
	setReplace = true
	defer func() {
		setStdout = false
		setReplace = false
	}()

	cmd := NewSetCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runSet(cmd, []string{path, "a", `{"y": 9}`}); err != nil {
		t.Fatalf("runSet: %v", err)
	}
	if strings.Contains(buf.String(), `"x"`) {
		t.Errorf("replace kept merged key: %s", buf.String())
	}
}

func TestPatchAppliesOperations(t *testing.T) {
	path := writeTempJSON(t, `{"a": 1}`)
	patchPath := filepath.Join(t.TempDir(), "patch.json")
	ops := `[{"op": "replace", "path": "/a", "value": 2}]`
	if err := os.WriteFile(patchPath, []byte(ops), 0644); err != nil {
		t.Fatal(err)
	}

	patchStdout = true
	defer func() { patchStdout = false }()

	cmd := NewPatchCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runPatch(cmd, []string{path, patchPath}); err != nil {
		t.Fatalf("runPatch: %v", err)
	}
	if !strings.Contains(buf.String(), `"a": 2`) {
		t.Errorf("patched document = %s", buf.String())
	}
}

func TestConvertYAMLToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte("a: 1\nb: hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	convertOutput = ""
	cmd := NewConvertCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runConvert(cmd, []string{path}); err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"a"`) || !strings.Contains(out, `"hello"`) {
		t.Errorf("converted output = %s", out)
	}
}
