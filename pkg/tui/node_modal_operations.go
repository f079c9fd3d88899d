package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
)

// handleModalInput processes input while the node modal is open. Returns
// whether the key was consumed.
func (a *App) handleModalInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	m := a.modal
	if !m.Session.IsOpen() {
		return false, nil
	}

	// The cancel confirmation swallows everything while active.
	if m.CancelConfirm.Active() {
		return true, m.CancelConfirm.Update(msg)
	}

	if m.Session.IsEditing() {
		return a.handleModalEditing(msg)
	}
	return a.handleModalViewing(msg)
}

func (a *App) handleModalViewing(msg tea.KeyMsg) (bool, tea.Cmd) {
	m := a.modal
	switch msg.String() {
	case "esc", "q":
		m.Close()
		return true, nil

	case "e", "enter":
		m.StartEditing()
		return true, nil

	case "y":
		return true, a.copyNodePath()

	case "c":
		return true, a.copyNodeContent()

	case "n", "down":
		a.moveModalSelection(1)
		return true, nil

	case "p", "up":
		a.moveModalSelection(-1)
		return true, nil
	}
	return true, nil
}

func (a *App) handleModalEditing(msg tea.KeyMsg) (bool, tea.Cmd) {
	m := a.modal
	switch msg.String() {
	case "ctrl+s":
		return true, a.saveNode()

	case "ctrl+d":
		if a.settings.UI.ShowPreview {
			m.ShowDiff = !m.ShowDiff
		}
		return true, nil

	case "esc":
		if m.HasUnsavedChanges() {
			m.CancelConfirm.Show(ConfirmationConfig{
				Title:       "Discard changes?",
				Message:     "The edit buffer differs from the document.",
				Destructive: true,
				Width:       m.Width - 8,
			},
				func() tea.Cmd {
					m.StopEditing()
					return nil
				},
				func() tea.Cmd { return nil },
			)
			return true, nil
		}
		m.StopEditing()
		return true, nil

	default:
		cmd := m.UpdateTextarea(msg)
		return true, cmd
	}
}

// saveNode runs the save pipeline. Failure leaves the session in Editing
// with the buffer intact; the error becomes the status diagnostic.
func (a *App) saveNode() tea.Cmd {
	m := a.modal
	if err := m.Session.Save(); err != nil {
		return statusErrorCmd(fmt.Sprintf("× Save failed: %v", err))
	}

	m.ShowDiff = false
	m.Textarea.Reset()
	m.Textarea.Blur()

	if a.filePath != "" {
		if err := document.SaveFile(a.filePath, []byte(a.svc.ReadText())); err != nil {
			return statusErrorCmd(fmt.Sprintf("× Saved in memory, file write failed: %v", err))
		}
	}
	return statusInfoCmd(fmt.Sprintf("✓ Saved %s", m.Session.PathDisplay()))
}

// moveModalSelection moves the external selection while the modal is
// open, which forces the session back to Viewing.
func (a *App) moveModalSelection(delta int) {
	if delta > 0 {
		a.tree.MoveDown()
	} else {
		a.tree.MoveUp()
	}
	a.modal.SelectionChanged()
}

func (a *App) copyNodePath() tea.Cmd {
	path := a.modal.Session.PathDisplay()
	if err := clipboardWrite(path); err != nil {
		return statusErrorCmd(fmt.Sprintf("× Copy failed: %v", err))
	}
	return statusInfoCmd(fmt.Sprintf("✓ Copied %s", path))
}

func (a *App) copyNodeContent() tea.Cmd {
	if err := clipboardWrite(a.modal.Session.DisplayText()); err != nil {
		return statusErrorCmd(fmt.Sprintf("× Copy failed: %v", err))
	}
	return statusInfoCmd("✓ Copied node content")
}

func statusInfoCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func statusErrorCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, IsError: true} }
}
