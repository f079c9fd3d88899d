package editor

import (
	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/graph"
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// SelectionProvider is the node-selection subsystem the session consumes.
type SelectionProvider interface {
	CurrentSelection() (models.NodeData, bool)
	AllNodes() []models.NodeData
	SetSelection(models.NodeData)
}

// DocumentProvider is the document store the session reads and rewrites.
// ReplaceText is expected to trigger the external node-set rebuild before
// it returns, so AllNodes reflects the new text afterwards.
type DocumentProvider interface {
	ReadText() string
	ReplaceText(string)
}

// SessionState is the modal's lifecycle state.
type SessionState int

const (
	Viewing SessionState = iota
	Editing
)

// Session drives one node's modal: Viewing shows the normalized text,
// StartEdit copies it into the edit buffer, Save runs the pipeline
// (parse, merge, patch, replace, reconcile) synchronously, Cancel drops
// the buffer. Opening the modal or switching the selected node while it
// is open forces Viewing with a cleared buffer, whatever the prior state.
type Session struct {
	selection SelectionProvider
	doc       DocumentProvider
	settings  *models.Settings

	open    bool
	state   SessionState
	node    models.NodeData
	hasNode bool
	display string
	buffer  string
	saving  bool
}

func NewSession(selection SelectionProvider, doc DocumentProvider, settings *models.Settings) *Session {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &Session{
		selection: selection,
		doc:       doc,
		settings:  settings,
	}
}

// Open shows the modal on the current selection.
func (s *Session) Open() {
	s.open = true
	s.SelectionChanged()
}

// Close hides the modal and discards any in-progress edit.
func (s *Session) Close() {
	s.open = false
	s.state = Viewing
	s.buffer = ""
}

// SelectionChanged re-snapshots the externally-selected node and forces
// the Viewing state with a cleared buffer.
func (s *Session) SelectionChanged() {
	s.state = Viewing
	s.buffer = ""
	node, ok := s.selection.CurrentSelection()
	if !ok {
		s.hasNode = false
		s.node = models.NodeData{}
		s.display = ""
		return
	}
	s.node = node
	s.hasNode = true
	s.display = Normalize(node.Rows)
}

func (s *Session) IsOpen() bool               { return s.open }
func (s *Session) State() SessionState        { return s.state }
func (s *Session) IsEditing() bool            { return s.state == Editing }
func (s *Session) DisplayText() string        { return s.display }
func (s *Session) Buffer() string             { return s.buffer }
func (s *Session) Node() (models.NodeData, bool) { return s.node, s.hasNode }

// PathDisplay returns the selected node's address in `$["a"][0]` form.
func (s *Session) PathDisplay() string {
	return jsonpath.Display(s.node.Path)
}

// StartEdit seeds the edit buffer from the display text.
func (s *Session) StartEdit() {
	if !s.open || !s.hasNode || s.state == Editing {
		return
	}
	s.buffer = s.display
	s.state = Editing
}

// SetBuffer is the change handler for the edit buffer.
func (s *Session) SetBuffer(text string) {
	if s.state != Editing {
		return
	}
	s.buffer = text
}

// Cancel discards the buffer and returns to Viewing.
func (s *Session) Cancel() {
	if s.state != Editing {
		return
	}
	s.buffer = ""
	s.state = Viewing
}

// Pending computes the document text a save would write, without writing
// it. The TUI uses it for the diff preview.
func (s *Session) Pending() ([]byte, error) {
	doc := []byte(s.doc.ReadText())
	outcome := ParseValue(s.buffer)
	decision := Resolve(doc, s.node.Path, outcome.Value)
	format := document.FormatFor(doc, s.settings)
	return document.Patch(doc, s.node.Path, decision.Value, format)
}

// Save runs the pipeline and writes the result. On failure the session
// stays in Editing with the buffer intact and the error is the
// diagnostic; the document is untouched. A save arriving while one is
// already in flight is ignored.
func (s *Session) Save() error {
	if !s.open || s.state != Editing || s.saving {
		return nil
	}
	s.saving = true
	defer func() { s.saving = false }()

	next, err := s.Pending()
	if err != nil {
		return err
	}

	path := s.node.Path.Clone()
	s.doc.ReplaceText(string(next))

	if node, ok := graph.Reconcile(s.selection.AllNodes(), path); ok {
		s.selection.SetSelection(node)
		s.node = node
		s.hasNode = true
		s.display = Normalize(node.Rows)
	}

	s.buffer = ""
	s.state = Viewing
	return nil
}
