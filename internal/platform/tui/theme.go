package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles for the match screen.
type Theme struct {
	// Board cells
	Water lipgloss.Style
	Ship  lipgloss.Style
	Hit   lipgloss.Style
	Miss  lipgloss.Style
	Grid  lipgloss.Style // Header, row labels and separators

	// Layout
	Title      lipgloss.Style
	BoardFrame lipgloss.Style
	BoardTitle lipgloss.Style
	Log        lipgloss.Style
	LogLatest  lipgloss.Style
	Help       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Water: lipgloss.NewStyle().Foreground(lipgloss.Color("24")),  // Deep blue
		Ship:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")), // Light gray
		Hit:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Miss:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Grid:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		BoardFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		BoardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Log:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LogLatest:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
