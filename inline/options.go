// Package inline implements the non-interactive mode: one lookup printed to a writer.
package inline

import (
	"io"

	"github.com/samber/mo"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/lookup"
)

// Format selects how a successful lookup is printed.
type Format int

const (
	// Styled is colored text wrapped to the terminal width.
	Styled Format = iota
	// Plain is a table per section without colors.
	Plain
	// JSON is the projected sections together with the lookup state.
	JSON
	// Raw is the record exactly as the catalog returned it.
	Raw
)

// Options configures a single Run.
type Options struct {
	// Out receives the lookup output. Defaults to stdout.
	Out io.Writer
	// Err receives status messages so they never mix with Out. Defaults to stderr.
	Err io.Writer

	Controller *lookup.Controller
	Projector  display.Projector

	ID     string
	Format Format
	// Width is the wrap width used by the Styled format.
	Width int

	// Export holds the file name to export the raw record to. An empty name uses the video id.
	Export    mo.Option[string]
	ExportDir string

	// Open launches the watch page after a successful lookup.
	Open bool
	// Browser opens a URL. Required when Open is set.
	Browser func(url string) error
}
