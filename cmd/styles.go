package cmd

import "charm.land/lipgloss/v2"

// Output styling shared by the catalog and commander commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D97706")) // brass

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22C55E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))
)
