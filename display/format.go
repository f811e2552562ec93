package display

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vidinfo-cli/vidinfo/constant"
	"golang.org/x/text/message"
)

// dateOnly is accepted for fields like recordingDate that may carry no time.
const dateOnly = "2006-01-02"

type formatter struct {
	printer  *message.Printer
	location *time.Location
	layout   string
}

// counter groups a decimal string by locale. The whole part of a decimal is kept,
// values beyond uint64 are grouped from their float form and anything else falls back.
func (f formatter) counter(value *string) string {
	if value == nil {
		return constant.Unavailable
	}

	raw := strings.TrimSpace(*value)
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return f.printer.Sprintf("%d", n)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return f.printer.Sprintf("%d", n)
	}

	x, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return constant.Unavailable
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return constant.Unavailable
	}

	// Adding zero turns a truncated -0 into 0.
	return f.printer.Sprintf("%.0f", math.Trunc(x)+0)
}

func (f formatter) timestamp(value *string) string {
	if value == nil {
		return constant.Unavailable
	}

	raw := strings.TrimSpace(*value)
	if raw == "" {
		return constant.Unavailable
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse(dateOnly, raw); err != nil {
			return constant.Unavailable
		}
	}

	return t.In(f.location).Format(f.layout)
}

func (f formatter) list(values []string) string {
	return strings.Join(values, ", ")
}

func (f formatter) flag(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

// text returns the value or the fallback when it is missing or blank.
func (f formatter) text(value *string) string {
	if value == nil || *value == "" {
		return constant.Unavailable
	}
	return *value
}

// dump is the last-resort representation for structured values.
func (f formatter) dump(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return constant.Unavailable
	}
	return string(b)
}
