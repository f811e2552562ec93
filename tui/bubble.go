package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/internal/ui"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/lookup"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/util"
)

// statefulBubble is the root model. Every field is owned by the bubbletea event loop.
type statefulBubble struct {
	ctx     context.Context
	options *Options

	state  state
	keymap *statefulKeymap

	controller *lookup.Controller
	// pending is the identifier of the attempt in flight.
	pending string
	// sections is the projection of the last successful lookup.
	sections display.Sections

	spinnerC  spinner.Model
	inputC    textinput.Model
	viewportC viewport.Model
	helpC     help.Model
	notifier  *ui.Notifier

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)

	if s == inputState {
		b.inputC.Focus()
	} else {
		b.inputC.Blur()
	}
}

// resize fits the components into the terminal, leaving room for the header and help lines.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = util.Max(width-x, 1)
	b.height = util.Max(height-y, 1)

	b.inputC.Width = util.Max(b.width-lipgloss.Width(b.inputC.Prompt)-1, 1)
	b.helpC.Width = b.width
	b.layout()

	if len(b.sections) > 0 {
		b.refreshViewport()
	}
}

// layout gives the viewport whatever height the header and help lines leave.
func (b *statefulBubble) layout() {
	chrome := headerHeight + lipgloss.Height(b.helpC.View(b.keymap))
	b.viewportC.Width = b.width
	b.viewportC.Height = util.Max(b.height-chrome, 1)
}

func (b *statefulBubble) refreshSuggestions() {
	b.inputC.SetSuggestions(recent.SuggestMany(""))
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	bubble := statefulBubble{
		ctx:        ctx,
		options:    options,
		keymap:     newStatefulKeymap(),
		controller: lookup.New(options.Retriever),
		notifier:   &ui.Notifier{},
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Accent)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Video ID or URL"
	bubble.inputC.CharLimit = 200
	bubble.inputC.Prompt = viper.GetString(key.TUIPrompt)
	bubble.inputC.ShowSuggestions = true
	bubble.inputC.KeyMap.AcceptSuggestion = bubble.keymap.acceptSuggestion
	bubble.inputC.SetValue(options.ID)
	bubble.refreshSuggestions()

	bubble.viewportC = viewport.New(0, 0)
	bubble.viewportC.KeyMap = bubble.keymap.forViewport()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	bubble.setState(inputState)

	return &bubble
}
