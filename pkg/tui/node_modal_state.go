package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bricklayer25/jsoncrack.com/pkg/editor"
)

// NodeModalState manages ONLY the state of the node modal - the edit
// session plus the widgets layered on top of it.
type NodeModalState struct {
	Session       *editor.Session
	Textarea      textarea.Model
	CancelConfirm *ConfirmationModel
	ShowDiff      bool
	Width         int
	Height        int
}

func NewNodeModalState(session *editor.Session) *NodeModalState {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(12)

	return &NodeModalState{
		Session:       session,
		Textarea:      ta,
		CancelConfirm: NewConfirmation(),
	}
}

// Open shows the modal on the current selection.
func (m *NodeModalState) Open() {
	m.Session.Open()
	m.ShowDiff = false
}

// Close hides the modal and drops any in-progress edit.
func (m *NodeModalState) Close() {
	m.Session.Close()
	m.ShowDiff = false
	m.CancelConfirm.active = false
	m.Textarea.Reset()
	m.Textarea.Blur()
}

// StartEditing seeds the textarea from the session's display text.
func (m *NodeModalState) StartEditing() {
	m.Session.StartEdit()
	if !m.Session.IsEditing() {
		return
	}
	m.Textarea.SetValue(m.Session.Buffer())
	m.Textarea.Focus()
}

// StopEditing returns to viewing, dropping the buffer.
func (m *NodeModalState) StopEditing() {
	m.Session.Cancel()
	m.ShowDiff = false
	m.Textarea.Reset()
	m.Textarea.Blur()
}

// HasUnsavedChanges reports whether the buffer drifted from the display
// text.
func (m *NodeModalState) HasUnsavedChanges() bool {
	return m.Session.IsEditing() && m.Session.Buffer() != m.Session.DisplayText()
}

// SelectionChanged re-snapshots the session after the tree cursor moved
// while the modal is open.
func (m *NodeModalState) SelectionChanged() {
	m.Session.SelectionChanged()
	m.ShowDiff = false
	m.Textarea.Reset()
	m.Textarea.Blur()
}

// UpdateTextarea feeds a message to the textarea and mirrors the result
// into the session buffer.
func (m *NodeModalState) UpdateTextarea(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.Textarea, cmd = m.Textarea.Update(msg)
	m.Session.SetBuffer(m.Textarea.Value())
	return cmd
}

// SetSize updates modal dimensions.
func (m *NodeModalState) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	taWidth := width - 8
	if taWidth < 20 {
		taWidth = 20
	}
	taHeight := height - 12
	if taHeight < 4 {
		taHeight = 4
	}
	m.Textarea.SetWidth(taWidth)
	m.Textarea.SetHeight(taHeight)
}
