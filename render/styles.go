package render

import "github.com/charmbracelet/lipgloss"

// Styles colors the panels by byte classification.
type Styles struct {
	Offset    lipgloss.Style
	Printable lipgloss.Style
	Control   lipgloss.Style
	Null      lipgloss.Style
	Unicode   lipgloss.Style
	Filler    lipgloss.Style
	Unknown   lipgloss.Style
	Frame     lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Offset:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Printable: lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		Control:   lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		Null:      lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
		Unicode:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Filler:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8B8000")),
		Unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// PlainStyles returns styles that leave the text untouched, for piped
// output and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Offset:    plain,
		Printable: plain,
		Control:   plain,
		Null:      plain,
		Unicode:   plain,
		Filler:    plain,
		Unknown:   plain,
		Frame:     plain,
	}
}
