package inline

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/lookup"
)

// Output is the JSON document printed by the JSON format.
type Output struct {
	ID       string           `json:"id"`
	Phase    lookup.Phase     `json:"phase"`
	Reason   string           `json:"reason,omitempty"`
	Sections display.Sections `json:"sections"`
}

func writeJSON(out io.Writer, id string, state lookup.State, sections display.Sections) error {
	if sections == nil {
		sections = display.Sections{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(&Output{
		ID:       id,
		Phase:    state.Phase,
		Reason:   state.Reason,
		Sections: sections,
	})
}

func writeRaw(out io.Writer, video *catalog.Video) error {
	raw, err := video.Raw()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err = buf.WriteTo(out)
	return err
}
