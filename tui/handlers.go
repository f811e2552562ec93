package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/export"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/internal/ui"
	"github.com/vidinfo-cli/vidinfo/log"
	"github.com/vidinfo-cli/vidinfo/lookup"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/render"
)

// fetchedMsg carries the retriever result back into the event loop.
type fetchedMsg struct {
	items []catalog.Video
	err   error
}

// submit starts a lookup for the raw input. It returns nil when the controller refuses it,
// either because an attempt is in flight or because the input is blank.
// A blank input fails the lookup, so the previous record is no longer shown.
func (b *statefulBubble) submit(input string) tea.Cmd {
	id := catalog.ParseID(input)
	if !b.controller.Begin(id) {
		if _, ok := b.record(); !ok {
			b.sections = nil
		}
		return nil
	}

	b.pending = id
	b.sections = nil
	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, b.fetch(id))
}

func (b *statefulBubble) fetch(id string) tea.Cmd {
	retriever := b.options.Retriever
	ctx := b.ctx

	return func() tea.Msg {
		items, err := retriever.Fetch(ctx, id)
		return fetchedMsg{items: items, err: err}
	}
}

func (b *statefulBubble) handleFetched(msg fetchedMsg) tea.Cmd {
	state := b.controller.Finish(msg.items, msg.err)

	record, ok := state.Record.Get()
	if !ok {
		b.setState(inputState)
		return nil
	}

	if err := recent.Remember(b.pending); err != nil {
		log.Warnf("remember %s: %v", b.pending, err)
	}
	b.refreshSuggestions()

	b.sections = b.options.Projector.Project(record)
	b.refreshViewport()
	b.viewportC.GotoTop()
	b.setState(resultState)
	return nil
}

func (b *statefulBubble) refreshViewport() {
	b.viewportC.SetContent(render.Styled(b.sections, b.width))
}

// hasResult reports whether there is a successful record to go back to.
func (b *statefulBubble) hasResult() bool {
	_, ok := b.record()
	return ok && len(b.sections) > 0
}

// record returns the current successful record, if any.
func (b *statefulBubble) record() (*catalog.Video, bool) {
	state := b.controller.State()
	if state.Phase != lookup.Success {
		return nil, false
	}
	return state.Record.Get()
}

func (b *statefulBubble) exportRecord() tea.Cmd {
	record, ok := b.record()
	if !ok {
		return nil
	}

	path, err := export.File(record, b.options.ExportDir, "")
	if err != nil {
		log.Errorf("export %s: %v", record.ID, err)
		return ui.Notify(fmt.Sprintf("%s export failed", icon.Get(icon.Fail)))
	}

	return ui.Notify(fmt.Sprintf("%s exported to %s (%s)", icon.Get(icon.Export), path, export.Size(path)))
}

func (b *statefulBubble) openRecord() tea.Cmd {
	record, ok := b.record()
	if !ok || b.options.Browser == nil {
		return nil
	}

	if err := b.options.Browser(record.WatchURL()); err != nil {
		log.Errorf("open %s: %v", record.WatchURL(), err)
		return ui.Notify(fmt.Sprintf("%s could not open browser", icon.Get(icon.Fail)))
	}

	return ui.Notify(fmt.Sprintf("%s opened %s", icon.Get(icon.Link), record.WatchURL()))
}
