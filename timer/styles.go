package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
	lapLines = 5
)

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	clock     lipgloss.Style
	hint      lipgloss.Style
	secondary lipgloss.Style
	errText   lipgloss.Style
	alert     lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	hint := lipgloss.Color("#626262")
	main := lipgloss.Color("#FFFFFF")
	accent := lipgloss.Color("#FF6347")

	if !darkTheme {
		hint = lipgloss.Color("#8A8A8A")
		main = lipgloss.Color("#1A1A1A")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		clock:     lipgloss.NewStyle().Bold(true).Foreground(main),
		hint:      lipgloss.NewStyle().Foreground(hint),
		secondary: lipgloss.NewStyle().Foreground(main),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF2F2F")),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4),
	}
}
