// Package style provides small lipgloss helpers shared by every renderer.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidinfo-cli/vidinfo/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Text transformations.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a banner in the brand colors.
var Title = func(s string) string {
	return Colored(color.Ink, color.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a banner in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.Ink, color.Red).Padding(0, 1).Render(s)
}

// Section renders the heading of a projected section.
var Section = func(s string) string {
	return New().Bold(true).Foreground(color.Accent).Render(s)
}

// Label renders a field label padded to width.
func Label(width int) func(string) string {
	return func(s string) string {
		return New().Foreground(color.Cyan).Width(width).Render(s)
	}
}

// Unavailable renders the fallback value.
var Unavailable = func(s string) string { return New().Faint(true).Italic(true).Render(s) }
