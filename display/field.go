// Package display projects catalog records into ordered, labeled sections.
package display

import "github.com/samber/mo"

// Kind tells a renderer how a field value should be treated.
type Kind int

const (
	// Text is plain text that can be printed as is.
	Text Kind = iota
	// Markup is pre-formatted structured content, such as an embed fragment.
	// Renderers must sanitize it before display.
	Markup
)

func (k Kind) String() string {
	if k == Markup {
		return "markup"
	}
	return "text"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name. Anything but markup is text.
func (k *Kind) UnmarshalText(text []byte) error {
	if string(text) == "markup" {
		*k = Markup
	} else {
		*k = Text
	}
	return nil
}

// Field is a single labeled value.
type Field struct {
	Section string `json:"section"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Kind    Kind   `json:"kind"`
}

// Section is a named group of fields in display order.
type Section struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Sections is the output of a projection.
type Sections []Section

// Fields flattens the sections, keeping their order.
func (s Sections) Fields() []Field {
	var fields []Field
	for _, section := range s {
		fields = append(fields, section.Fields...)
	}
	return fields
}

// Section returns the section with the given name.
func (s Sections) Section(name string) mo.Option[Section] {
	for _, section := range s {
		if section.Name == name {
			return mo.Some(section)
		}
	}
	return mo.None[Section]()
}

// Lookup returns the value of a field.
func (s Sections) Lookup(section, label string) mo.Option[string] {
	found, ok := s.Section(section).Get()
	if !ok {
		return mo.None[string]()
	}

	for _, field := range found.Fields {
		if field.Label == label {
			return mo.Some(field.Value)
		}
	}
	return mo.None[string]()
}
