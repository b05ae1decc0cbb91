package viewer

import "github.com/charmbracelet/lipgloss"

// Style controls the viewer's rendering.
type Style struct {
	Text     lipgloss.Style
	Headline lipgloss.Style
	// Marker styles visible marker runs (mode off, or level past the
	// numbered range).
	Marker lipgloss.Style
	// Number styles numbering labels rendered in place of hidden runs.
	Number  lipgloss.Style
	LineNum lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:     lipgloss.NewStyle(),
		Headline: lipgloss.NewStyle().Bold(true),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
