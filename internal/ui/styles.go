package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// StatusColor picks a color for a tracker status by its category
func StatusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "done", "closed", "resolved", "released":
		return ColorGreen
	case "in progress", "in review", "review", "testing", "in testing":
		return ColorYellow
	case "?":
		return ColorRed
	default:
		return ColorWhite
	}
}

// Styles is the set of styles used to print a report
type Styles struct {
	Rule        lipgloss.Style
	Key         lipgloss.Style
	ForeignKey  lipgloss.Style
	Commit      lipgloss.Style
	NoCommit    lipgloss.Style
	Link        lipgloss.Style
	SummaryName lipgloss.Style
	SummaryNum  lipgloss.Style
	renderer    *lipgloss.Renderer
}

// NewStyles builds report styles bound to a renderer so the color
// profile follows the output they are written to
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Rule:        r.NewStyle().Foreground(ColorCyan),
		Key:         r.NewStyle().Bold(true),
		ForeignKey:  r.NewStyle().Foreground(ColorYellow).Bold(true),
		Commit:      r.NewStyle().Foreground(ColorCyan),
		NoCommit:    r.NewStyle().Foreground(ColorDarkGray),
		Link:        r.NewStyle().Foreground(ColorDarkGray).Underline(true),
		SummaryName: r.NewStyle(),
		SummaryNum:  r.NewStyle().Bold(true),
		renderer:    r,
	}
}

// Status returns the style for a status value
func (s Styles) Status(status string) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(StatusColor(status))
}
