package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	OKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	BoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// releaseColors maps a file's release type name to its badge color.
var releaseColors = map[string]string{
	"release": "10",
	"beta":    "33",
	"alpha":   "208",
}

// Colorize applies the given ANSI 256 color code to the text using lipgloss.
func Colorize(text, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// ReleaseBadge renders a release type name in its color; unknown types are left plain.
func ReleaseBadge(releaseType string) string {
	color, ok := releaseColors[releaseType]
	if !ok {
		return releaseType
	}
	return Colorize(releaseType, color)
}
