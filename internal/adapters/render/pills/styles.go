package pills

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	pill       lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	errorText  lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	windowOn   lipgloss.Style
	windowOff  lipgloss.Style
	windowMeta lipgloss.Style
	dose       lipgloss.Style
	jsonBody   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		pill:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		errorText:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		windowOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		windowOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		windowMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		dose:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		jsonBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
	}
}
