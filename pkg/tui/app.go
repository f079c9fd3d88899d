package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
	"github.com/bricklayer25/jsoncrack.com/pkg/editor"
	"github.com/bricklayer25/jsoncrack.com/pkg/graph"
	"github.com/bricklayer25/jsoncrack.com/pkg/jsonpath"
	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// StatusMsg carries a status-bar diagnostic between views.
type StatusMsg struct {
	Text    string
	IsError bool
}

// App is the top-level bubbletea model: the node tree with the edit
// modal layered over it.
type App struct {
	svc      *document.Service
	mirror   *document.Mirror
	settings *models.Settings
	tree     *TreeModel
	modal    *NodeModalState
	filePath string

	width  int
	height int
	status StatusMsg
}

// NewApp wires the document service, the tree (which doubles as the
// selection provider), the raw-buffer mirror, and the edit session.
// The tree rebuild is the first subscriber so that a save's reconcile
// step always sees the node set for the new text.
func NewApp(text, filePath string, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	svc := document.NewService(text)
	tree := NewTreeModel(settings.UI.ExpandDepth)
	tree.SetNodes(graph.Build([]byte(text)))
	svc.Subscribe(func(t string) {
		tree.SetNodes(graph.Build([]byte(t)))
	})

	mirror := document.NewMirror("")
	document.AttachMirror(svc, mirror)

	session := editor.NewSession(tree, svc, settings)

	return &App{
		svc:      svc,
		mirror:   mirror,
		settings: settings,
		tree:     tree,
		modal:    NewNodeModalState(session),
		filePath: filePath,
	}
}

// Service exposes the document service, mainly for tests.
func (a *App) Service() *document.Service { return a.svc }

func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.modal.SetSize(msg.Width-8, msg.Height-4)
		return a, nil

	case StatusMsg:
		a.status = msg
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.status = StatusMsg{}

		if handled, cmd := a.handleModalInput(msg); handled {
			return a, cmd
		}
		return a, a.handleTreeInput(msg)
	}

	return a, nil
}

func (a *App) handleTreeInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit

	case "up", "k":
		a.tree.MoveUp()

	case "down", "j":
		a.tree.MoveDown()

	case " ":
		a.tree.ToggleCollapse()

	case "enter", "v":
		a.modal.Open()

	case "e":
		a.modal.Open()
		a.modal.StartEditing()

	case "y":
		if node, ok := a.tree.CurrentSelection(); ok {
			return a.copyPath(node.Path)
		}
	}
	return nil
}

func (a *App) copyPath(path models.Path) tea.Cmd {
	display := jsonpath.Display(path)
	return func() tea.Msg {
		if err := clipboardWrite(display); err != nil {
			return StatusMsg{Text: fmt.Sprintf("× Copy failed: %v", err), IsError: true}
		}
		return StatusMsg{Text: fmt.Sprintf("✓ Copied %s", display)}
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	body := RenderTree(a.tree, a.width, a.height-3)

	if a.modal.Session.IsOpen() {
		modal := RenderNodeModal(a)
		body = lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, modal)
	}

	content := lipgloss.JoinVertical(lipgloss.Top, header, body)

	if a.status.Text != "" {
		style := statusInfoStyle
		if a.status.IsError {
			style = statusErrorStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Top, content, style.Render(a.status.Text))
	}
	return content
}

func (a *App) renderHeader() string {
	name := a.filePath
	if name == "" {
		name = "(stdin)"
	}
	title := titleStyle.Render("jsoncrack") + "  " + name
	count := helpStyle.Render(fmt.Sprintf("%d nodes", len(a.tree.AllNodes())))
	return title + "  " + count
}
