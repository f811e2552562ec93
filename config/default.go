// Package config registers every configuration key with its default and binds them to viper.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
	// Secret fields are masked whenever their current value is printed.
	Secret bool
}

// Current returns the effective value, masked for secret fields.
func (f *Field) Current() any {
	if f.Secret {
		return Mask(viper.GetString(f.Key))
	}
	return viper.Get(f.Key)
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}

// Env is the environment variable bound to the field, e.g. VIDINFO_API_KEY.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Vidinfo + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	if f.Value == nil {
		return "unknown"
	}
	return reflect.TypeOf(f.Value).String()
}

// Pretty describes the field on several colored lines for "config info".
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := [][2]string{
		{"Key:", style.Fg(color.Purple)(f.Key)},
		{"Env:", f.Env()},
		{"Value:", highlight(f.Current())},
		{"Default:", highlight(f.Value)},
		{"Type:", f.typeName()},
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", label(fmt.Sprintf("%-8s", row[0])), row[1])
	}
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

// MarshalJSON includes the current value and the env variable next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Secret      bool   `json:"secret,omitempty"`
	}{
		f.Key, f.Env(), f.Current(), f.Value, f.Description, f.typeName(), f.Secret,
	})
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	add := func(field Field) {
		if _, exists := Default[field.Key]; exists {
			panic("duplicate config key: " + field.Key)
		}
		Default[field.Key] = field
		EnvExposed = append(EnvExposed, field.Key)
	}

	register := func(k string, v any, desc string) {
		add(Field{Key: k, Value: v, Description: desc})
	}

	secret := func(k string, desc string) {
		add(Field{Key: k, Value: "", Description: desc, Secret: true})
	}

	secret(key.APIKey, "Static API key sent with every catalog request.\nFalls back to the system keyring when empty (see \"vidinfo auth set\")")
	register(key.APIEndpoint, constant.CatalogEndpoint, "Catalog endpoint queried for video records")
	register(key.APIParts, constant.CatalogParts, "Resource parts requested from the catalog")
	register(key.APITimeout, 60, "Request timeout in seconds. 0 disables the timeout")
	register(key.FormatLocale, "en", "BCP 47 locale used for digit grouping, e.g. en, de, fr")
	register(key.FormatTimezone, "Local", "IANA time zone timestamps are displayed in, e.g. UTC, Europe/Berlin")
	register(key.FormatTimeLayout, "1/2/2006, 3:04:05 PM", "Go time layout used to display timestamps")
	register(key.ExportDir, ".", "Directory raw JSON exports are written to")
	register(key.RecentRemember, true, "Remember looked up identifiers for suggestions")
	register(key.RecentLimit, 20, "Maximum number of suggestions to show")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIPrompt, "> ", "Prompt string of the interactive input")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 10, "Maximum size in megabytes of a log file before it is rotated")
	register(key.LogsMaxAge, 14, "Maximum number of days to retain rotated log files")
	register(key.CliColored, true, "Enable colored CLI output")
}
