package report

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles for terminal rendering.
type Theme struct {
	Name   string
	Banner lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Alert  lipgloss.Style
	Muted  lipgloss.Style
	Rule   string
}

// DefaultTheme returns a colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Bold(true),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Rule:   "─",
	}
}

// MonoTheme returns a theme without colors.
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Banner: lipgloss.NewStyle().Bold(true),
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle(),
		Value:  lipgloss.NewStyle(),
		Alert:  lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
		Rule:   "-",
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
