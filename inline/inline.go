package inline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vidinfo-cli/vidinfo/export"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/log"
	"github.com/vidinfo-cli/vidinfo/lookup"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/render"
)

// FailureError reports a failed lookup. Its message is the user-facing reason;
// the underlying cause is only reachable through errors.Is and errors.As.
type FailureError struct {
	State lookup.State
}

func (e *FailureError) Error() string {
	return e.State.Reason
}

func (e *FailureError) Unwrap() error {
	return e.State.Err
}

// Run performs one lookup and prints it.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}

	id := strings.TrimSpace(options.ID)
	state := options.Controller.Submit(ctx, id)

	record, ok := state.Record.Get()
	if !ok {
		if options.Format == JSON {
			if err := writeJSON(options.Out, id, state, nil); err != nil {
				return err
			}
		}
		return &FailureError{State: state}
	}

	if err := recent.Remember(id); err != nil {
		log.Warnf("remember %s: %v", id, err)
	}

	sections := options.Projector.Project(record)

	var err error
	switch options.Format {
	case Raw:
		err = writeRaw(options.Out, record)
	case JSON:
		err = writeJSON(options.Out, id, state, sections)
	case Plain:
		_, err = fmt.Fprintln(options.Out, render.Table(sections))
	default:
		_, err = fmt.Fprint(options.Out, render.Styled(sections, options.Width))
	}
	if err != nil {
		return err
	}

	if name, ok := options.Export.Get(); ok {
		path, err := export.File(record, options.ExportDir, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(options.Err, "%s exported to %s (%s)\n", icon.Get(icon.Export), path, export.Size(path))
	}

	if options.Open && options.Browser != nil {
		if err := options.Browser(record.WatchURL()); err != nil {
			return fmt.Errorf("open %s: %w", record.WatchURL(), err)
		}
	}

	return nil
}
