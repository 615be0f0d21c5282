package sessions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	index   lipgloss.Style
	label   lipgloss.Style
	project lipgloss.Style
	path    lipgloss.Style
	id      lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		project: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		id:      lipgloss.NewStyle().Faint(true),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
