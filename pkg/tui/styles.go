package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across views
const (
	ColorActive   = "170" // purple for active panes
	ColorInactive = "240" // gray for inactive chrome
	ColorKey      = "39"  // blue for object keys
	ColorValue    = "214" // orange for scalar values
	ColorPath     = "78"  // green for node addresses
	ColorError    = "196"
	ColorSuccess  = "78"
	ColorAdded    = "78"
	ColorRemoved  = "196"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPath))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorKey))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorValue))

	cursorLineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color(ColorError)).
				Padding(0, 1)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	modalBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(0, 1)

	diffAddedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAdded))

	diffRemovedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorRemoved))
)
