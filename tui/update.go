package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidinfo-cli/vidinfo/internal/ui"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	case fetchedMsg:
		return b, b.handleFetched(msg)
	case ui.NotificationMsg:
		return b, b.notifier.Update(msg)
	}

	switch b.state {
	case inputState:
		return b.updateInput(msg)
	case loadingState:
		return b.updateLoading(msg)
	case resultState:
		return b.updateResult(msg)
	}

	return b, b.notifier.Update(msg)
}

func (b *statefulBubble) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.confirm):
			return b, b.submit(b.inputC.Value())
		case key.Matches(msg, b.keymap.back):
			if b.hasResult() {
				b.setState(resultState)
				return b, nil
			}
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, tea.Batch(cmd, b.notifier.Update(msg))
}

// updateLoading only animates the spinner. Input is ignored until the attempt settles.
func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	return b, b.notifier.Update(msg)
}

func (b *statefulBubble) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.back):
			b.setState(inputState)
			return b, nil
		case key.Matches(msg, b.keymap.export):
			return b, b.exportRecord()
		case key.Matches(msg, b.keymap.openURL):
			return b, b.openRecord()
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			b.layout()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.viewportC, cmd = b.viewportC.Update(msg)
	return b, tea.Batch(cmd, b.notifier.Update(msg))
}
