package render

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/vidinfo-cli/vidinfo/util"
)

// minValueWidth keeps values readable on very narrow terminals.
const minValueWidth = 20

// Styled renders the sections as colored text wrapped to width.
// Labels are aligned within each section and wrapped values are indented under their value column.
func Styled(sections display.Sections, width int) string {
	var b strings.Builder

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(style.Section(section.Name))
		b.WriteString("\n")

		if len(section.Fields) == 0 {
			b.WriteString(style.Faint("  (empty)"))
			b.WriteString("\n")
			continue
		}

		labelWidth := lo.Max(lo.Map(section.Fields, func(f display.Field, _ int) int {
			return len(f.Label)
		})) + 2
		label := style.Label(labelWidth)
		valueWidth := util.Max(width-labelWidth-2, minValueWidth)

		for _, field := range section.Fields {
			value := wrapValue(Value(field), valueWidth)
			if field.Value == constant.Unavailable {
				value = style.Unavailable(value)
			}

			lines := strings.SplitN(value, "\n", 2)
			b.WriteString("  ")
			b.WriteString(label(field.Label))
			b.WriteString(lines[0])
			b.WriteString("\n")

			if len(lines) > 1 {
				b.WriteString(indent.String(lines[1], uint(labelWidth+2)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// wrapValue breaks on words first and hard-wraps whatever is still too long, such as URLs.
func wrapValue(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}
