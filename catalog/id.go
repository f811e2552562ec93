package catalog

import (
	"net/url"
	"strings"
)

var watchHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
}

// ParseID normalizes a watch URL, share link or bare identifier into a video id.
// Input that is not a recognised URL is returned trimmed and otherwise unchanged.
func ParseID(input string) string {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, "/") {
		return input
	}

	raw := input
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return input
	}

	host := strings.ToLower(u.Host)
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })

	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		if len(segments) > 0 {
			return segments[0]
		}
	case watchHosts[host]:
		if v := u.Query().Get("v"); v != "" {
			return v
		}

		if len(segments) >= 2 {
			switch segments[0] {
			case "shorts", "embed", "live", "v":
				return segments[1]
			}
		}
	}

	return input
}
