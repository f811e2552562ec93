package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vidinfo-cli/vidinfo/display"
)

// valueWidthMax caps the value column so long descriptions wrap instead of stretching the table.
const valueWidthMax = 80

// Value returns the printable value of a field.
func Value(field display.Field) string {
	if field.Kind == display.Markup {
		return Markup(field.Value)
	}
	return field.Value
}

// Table renders each section as a rounded two-column table without colors.
func Table(sections display.Sections) string {
	rendered := make([]string, 0, len(sections))

	for _, section := range sections {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.SetTitle(section.Name)
		tw.AppendHeader(table.Row{"Field", "Value"})

		for _, field := range section.Fields {
			tw.AppendRow(table.Row{field.Label, Value(field)})
		}

		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
			{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: valueWidthMax, WidthMaxEnforcer: text.WrapSoft},
		})

		rendered = append(rendered, tw.Render())
	}

	return strings.Join(rendered, "\n\n")
}
