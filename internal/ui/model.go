// Package ui holds small bubbletea components shared by interactive views.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidinfo-cli/vidinfo/style"
)

// notificationLifetime is how long a notification stays visible.
const notificationLifetime = 3 * time.Second

// NotificationMsg asks the notifier to show a message.
type NotificationMsg string

// clearMsg carries the generation it was scheduled for, so an older timer
// cannot clear a newer notification.
type clearMsg struct {
	generation int
}

// Notifier shows short-lived status messages.
type Notifier struct {
	text       string
	generation int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// Update handles notifier messages and ignores everything else.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		n.text = string(msg)
		n.generation++
		generation := n.generation
		return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
			return clearMsg{generation: generation}
		})
	case clearMsg:
		if msg.generation == n.generation {
			n.text = ""
		}
	}
	return nil
}

// Text returns the visible notification, if any.
func (n *Notifier) Text() string {
	return n.text
}

// View appends the notification to line.
func (n *Notifier) View(line string) string {
	if n.text == "" {
		return line
	}
	return line + "  " + style.Faint(n.text)
}
