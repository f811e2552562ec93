package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink and looks up the initial identifier, if any.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.ID != "" {
		return tea.Batch(textinput.Blink, b.submit(b.options.ID))
	}

	return textinput.Blink
}
