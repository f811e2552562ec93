// Package tui provides the interactive terminal user interface.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/lookup"
)

// Options configures the interactive session.
type Options struct {
	Retriever lookup.Retriever
	Projector display.Projector

	// ID is looked up right away when set.
	ID        string
	ExportDir string
	// Browser opens a URL. The open binding is disabled when nil.
	Browser func(url string) error
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
