// internal/tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Tab bar
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(0, 1)

	// Screen headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Card list rows
	CursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	RowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	DefaultBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Status colors
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	DisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Expanded card face
	CardFaceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	// Detail labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Balance panel and add-card form
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)

	// Help line
	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StatusStyle returns the style for a card's active flag.
func StatusStyle(active bool) lipgloss.Style {
	if active {
		return ActiveStyle
	}
	return DisabledStyle
}
