package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorDanger  = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Text styles
var (
	Muted  = lipgloss.NewStyle().Foreground(ColorMuted)
	Danger = lipgloss.NewStyle().Foreground(ColorDanger)
)

// ID style - distinctive for record IDs
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style
var Title = lipgloss.NewStyle().Bold(true)

// RenderID returns a styled "#n" record ID padded to width.
func RenderID(id, width int) string {
	return lipgloss.NewStyle().Width(width).Render(ID.Render(fmt.Sprintf("#%d", id)))
}

// RenderCount returns "n noun" with a plural s when needed.
func RenderCount(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return Muted.Render(fmt.Sprintf("%d %s", n, noun))
}
