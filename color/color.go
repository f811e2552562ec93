// Package color holds the colors used across vidinfo output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, so output follows the terminal theme.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiRed    = New("9")
	HiPurple = New("13")
	HiBlack  = New("8")
)

// Brand colors.
var (
	Accent = New("#ff0033")
	Ink    = New("#f1f1f1")
	Gray   = New("#808080")
)
