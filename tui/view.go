package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/lookup"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/vidinfo-cli/vidinfo/util"
)

// headerHeight counts the title, scroll and blank lines above the viewport.
const headerHeight = 3

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case inputState:
		output = b.viewInput()
	case loadingState:
		output = b.viewLoading()
	case resultState:
		output = b.viewResult()
	}

	return paddingStyle.Render(output)
}

func (b *statefulBubble) viewInput() string {
	lines := []string{
		style.Title(constant.Vidinfo),
		"",
		b.inputC.View(),
		"",
	}

	if state := b.controller.State(); state.Phase == lookup.Failure {
		reason := icon.Get(icon.Fail) + " " + util.Capitalize(state.Reason)
		lines = append(lines, style.Fg(color.Red)(wrap.String(reason, b.width)), "")
	}

	lines = append(lines, b.notifier.View(b.helpC.View(b.keymap)))
	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewLoading() string {
	return strings.Join([]string{
		style.Title(constant.Vidinfo),
		"",
		b.spinnerC.View() + " Fetching " + style.Fg(color.Purple)(b.pending),
		"",
		b.helpC.View(b.keymap),
	}, "\n")
}

func (b *statefulBubble) viewResult() string {
	title := b.pending
	if record, ok := b.record(); ok && record.Snippet != nil && record.Snippet.Title != nil {
		title = *record.Snippet.Title
	}

	scroll := style.Faint(util.Quantify(len(b.sections), "section", "sections"))
	if b.viewportC.TotalLineCount() > b.viewportC.Height {
		scroll += style.Faint(fmt.Sprintf(" · %3.f%%", b.viewportC.ScrollPercent()*100))
	}

	return strings.Join([]string{
		style.Title(util.Truncate(title, util.Max(b.width-2, 1))),
		scroll,
		"",
		b.viewportC.View(),
		b.notifier.View(b.helpC.View(b.keymap)),
	}, "\n")
}
