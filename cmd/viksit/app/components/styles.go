package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		MarginBottom(1)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	AccentStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("212"))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	WarnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	DangerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("203"))

	HelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

// KeyValue renders a "label: value" line with shared styling.
func KeyValue(label, value string) string {
	return LabelStyle.Render(label+": ") + ValueStyle.Render(value)
}
