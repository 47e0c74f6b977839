package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the width of section rules
const RuleWidth = 90

// SectionRule centers a title in a line of dashes
// Example: "----- In release -----"
func SectionRule(title string, width int) string {
	return centerText(" "+title+" ", width, "-")
}

// centerText centers a string within a given width using fill.
// The odd cell, if any, goes to the right.
func centerText(s string, width int, fill string) string {
	if len(s) >= width {
		return s
	}
	leftPad := (width - len(s)) / 2
	rightPad := width - len(s) - leftPad
	return strings.Repeat(fill, leftPad) + s + strings.Repeat(fill, rightPad)
}

// padRight left-aligns s in a field of the given width.
// Width is counted in terminal cells, so wide runes take two.
// Longer values are left untouched.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
