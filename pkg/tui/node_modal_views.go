package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderNodeModal renders the modal: path header, then either the
// read-only display text or the edit textarea, optionally with the diff
// preview of the pending save.
func RenderNodeModal(a *App) string {
	m := a.modal
	width := m.Width
	if width < 30 {
		width = 30
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(titleStyle.Render("Node"))
	b.WriteString("  ")
	b.WriteString(pathStyle.Render(m.Session.PathDisplay()))
	b.WriteString("\n\n")

	if m.Session.IsEditing() {
		b.WriteString(m.Textarea.View())
		if m.ShowDiff {
			b.WriteString("\n\n")
			b.WriteString(titleStyle.Render("Pending change"))
			b.WriteString("\n")
			b.WriteString(renderDiffPreview(a, inner))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s save • ctrl+d diff • esc cancel"))
	} else {
		b.WriteString(wordwrap.String(m.Session.DisplayText(), inner))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("e edit • y copy path • c copy content • n/p node • esc close"))
	}

	content := modalBorderStyle.Width(width).Render(b.String())

	if m.CancelConfirm.Active() {
		return lipgloss.JoinVertical(lipgloss.Left, content, m.CancelConfirm.View())
	}
	return content
}

// renderDiffPreview diffs the current document against the text a save
// would write. A pipeline failure renders as the diagnostic instead.
func renderDiffPreview(a *App, width int) string {
	pending, err := a.modal.Session.Pending()
	if err != nil {
		return diffRemovedStyle.Render(wordwrap.String(err.Error(), width))
	}

	before := a.svc.ReadText()
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, string(pending), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(diffAddedStyle.Render(text))
		case diffmatchpatch.DiffDelete:
			b.WriteString(diffRemovedStyle.Render(text))
		default:
			b.WriteString(collapseEqual(text))
		}
	}
	return wordwrap.String(b.String(), width)
}

// collapseEqual shortens long unchanged stretches so the preview stays
// focused on the edit.
func collapseEqual(text string) string {
	const keep = 40
	if len(text) <= keep*2+5 {
		return text
	}
	return text[:keep] + " … " + text[len(text)-keep:]
}
