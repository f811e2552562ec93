// Package icon renders status symbols in the variant the user configured.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/key"
)

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

type variant struct {
	name string
	pick func(*iconDef) string
}

// variants is ordered; the first entry with a matching name wins.
var variants = []variant{
	{"emoji", func(d *iconDef) string { return d.emoji }},
	{"nerd", func(d *iconDef) string { return d.nerd }},
	{"plain", func(d *iconDef) string { return d.plain }},
	{"kaomoji", func(d *iconDef) string { return d.kaomoji }},
	{"squares", func(d *iconDef) string { return d.squares }},
}

// AvailableVariants lists the names accepted by the icons.variant key.
func AvailableVariants() []string {
	return lo.Map(variants, func(v variant, _ int) string { return v.name })
}

// Get renders i in the configured variant. An unknown variant falls back to plain
// and an unknown icon renders as nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	name := viper.GetString(key.IconsVariant)
	v, found := lo.Find(variants, func(v variant) bool { return v.name == name })
	if !found {
		return def.plain
	}

	return v.pick(def)
}
