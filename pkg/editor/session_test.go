package editor

import (
	"encoding/json"
	"testing"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/graph"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// fakeWorld implements SelectionProvider and DocumentProvider the way the
// TUI wires them: replacing the text rebuilds the node set and drops the
// selection until the reconciler restores it.
type fakeWorld struct {
	text         string
	nodes        []models.NodeData
	selected     int
	replaceCalls int
	onReplace    func()
}

func newFakeWorld(text string) *fakeWorld {
	w := &fakeWorld{text: text, selected: -1}
	w.nodes = graph.Build([]byte(text))
	return w
}

func (w *fakeWorld) ReadText() string { return w.text }

func (w *fakeWorld) ReplaceText(text string) {
	w.text = text
	w.nodes = graph.Build([]byte(text))
	w.selected = -1
	w.replaceCalls++
	if w.onReplace != nil {
		w.onReplace()
	}
}

func (w *fakeWorld) CurrentSelection() (models.NodeData, bool) {
	if w.selected < 0 || w.selected >= len(w.nodes) {
		return models.NodeData{}, false
	}
	return w.nodes[w.selected], true
}

func (w *fakeWorld) AllNodes() []models.NodeData { return w.nodes }

func (w *fakeWorld) SetSelection(node models.NodeData) {
	for i := range w.nodes {
		if w.nodes[i].ID == node.ID {
			w.selected = i
			return
		}
	}
}

func (w *fakeWorld) selectPath(t *testing.T, path models.Path) {
	t.Helper()
	for i := range w.nodes {
		if w.nodes[i].Path.Equal(path) {
			w.selected = i
			return
		}
	}
	t.Fatalf("no node at path %v", path)
}

func docEquals(t *testing.T, text, want string) {
	t.Helper()
	got, err := document.DecodeValue([]byte(text))
	if err != nil {
		t.Fatalf("saved document does not parse: %v\n%s", err, text)
	}
	wantV, err := document.DecodeValue([]byte(want))
	if err != nil {
		t.Fatalf("want document does not parse: %v", err)
	}
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(wantV)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("document = %s, want %s", gotJSON, wantJSON)
	}
}

func TestSessionSaveMergesIntoObject(t *testing.T) {
	world := newFakeWorld(`{"user":{"name":"Al","age":1,"tags":["x"]}}`)
	world.selectPath(t, models.Path{models.Key("user")})

	s := NewSession(world, world, nil)
	s.Open()
	if s.State() != Viewing {
		t.Fatalf("state after open = %v, want Viewing", s.State())
	}

	s.StartEdit()
	if !s.IsEditing() {
		t.Fatal("StartEdit did not enter Editing")
	}
	s.SetBuffer(`{"age":2}`)
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	docEquals(t, world.text, `{"user":{"name":"Al","age":2,"tags":["x"]}}`)
	if s.State() != Viewing {
		t.Errorf("state after save = %v, want Viewing", s.State())
	}
	if s.Buffer() != "" {
		t.Errorf("buffer not cleared after save: %q", s.Buffer())
	}
}

func TestSessionSaveRestoresSelection(t *testing.T) {
	world := newFakeWorld(`{"user":{"name":"Al","age":1,"tags":["x"]}}`)
	path := models.Path{models.Key("user")}
	world.selectPath(t, path)

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer(`{"age":2}`)
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	node, ok := world.CurrentSelection()
	if !ok {
		t.Fatal("selection was not restored after rebuild")
	}
	if !node.Path.Equal(path) {
		t.Errorf("restored selection path = %v, want %v", node.Path, path)
	}
}

func TestSessionScalarReplacesObjectRoot(t *testing.T) {
	world := newFakeWorld(`{"user":{"name":"Al","age":1,"tags":["x"]}}`)
	world.selectPath(t, models.Path{})

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer("5")
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	docEquals(t, world.text, "5")
}

func TestSessionSaveFailureStaysEditing(t *testing.T) {
	world := newFakeWorld(`{"a": {"b": 1}}`)
	world.selectPath(t, models.Path{models.Key("a")})

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer(`{"b": 2}`)

	// Corrupt the stored text so patch computation must abort.
	world.text = `{broken`

	err := s.Save()
	if err == nil {
		t.Fatal("Save on a corrupt document should fail")
	}
	if !s.IsEditing() {
		t.Error("session left Editing on save failure")
	}
	if s.Buffer() != `{"b": 2}` {
		t.Errorf("buffer = %q, want it intact on failure", s.Buffer())
	}
	if world.replaceCalls != 0 {
		t.Errorf("document was written %d times on a failed save", world.replaceCalls)
	}
}

func TestSessionCancelKeepsDocument(t *testing.T) {
	world := newFakeWorld(`{"a": {"b": 1}}`)
	world.selectPath(t, models.Path{models.Key("a")})

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer("999")
	s.Cancel()

	if s.State() != Viewing {
		t.Errorf("state after cancel = %v, want Viewing", s.State())
	}
	if world.replaceCalls != 0 {
		t.Error("cancel must not touch the document")
	}
	if s.Buffer() != "" {
		t.Errorf("buffer not cleared on cancel: %q", s.Buffer())
	}
}

func TestSessionSelectionChangeResetsEditing(t *testing.T) {
	world := newFakeWorld(`{"a": 1, "b": {"c": 2}}`)
	world.selectPath(t, models.Path{models.Key("b")})

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer("typing...")

	world.selectPath(t, models.Path{})
	s.SelectionChanged()

	if s.State() != Viewing {
		t.Errorf("state after selection change = %v, want Viewing", s.State())
	}
	if s.Buffer() != "" {
		t.Errorf("buffer survived a selection change: %q", s.Buffer())
	}
	if node, _ := s.Node(); !node.Path.Equal(models.Path{}) {
		t.Errorf("session did not re-snapshot the new selection")
	}
}

func TestSessionReentrantSaveIgnored(t *testing.T) {
	world := newFakeWorld(`{"a": {"b": 1}}`)
	world.selectPath(t, models.Path{models.Key("a")})

	s := NewSession(world, world, nil)
	s.Open()
	s.StartEdit()
	s.SetBuffer("2")

	// A second save arriving while the first one's write-and-reconcile
	// sequence runs must be a no-op.
	world.onReplace = func() {
		if err := s.Save(); err != nil {
			t.Errorf("reentrant Save returned error: %v", err)
		}
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if world.replaceCalls != 1 {
		t.Errorf("document written %d times, want 1", world.replaceCalls)
	}
}

func TestSessionStartEditRequiresOpenModal(t *testing.T) {
	world := newFakeWorld(`{"a": 1}`)
	world.selectPath(t, models.Path{})

	s := NewSession(world, world, nil)
	s.StartEdit()
	if s.IsEditing() {
		t.Error("StartEdit on a closed modal entered Editing")
	}

	s.Open()
	s.Close()
	s.StartEdit()
	if s.IsEditing() {
		t.Error("StartEdit after Close entered Editing")
	}
}
