// Package render turns projected sections into terminal output.
package render

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// stripper drops anything that could be read as a tag once printed.
var stripper = strings.NewReplacer("<", "", ">", "")

// Markup reduces an embed fragment to terminal-safe text.
// Embedded frames are shown by their source URL. Other content is reduced to its text,
// skipping script and style elements. Raw markup is never returned.
func Markup(fragment string) string {
	var (
		sources []string
		texts   []string
		skip    int
	)

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}
			return summarize(sources, texts)
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			switch token.DataAtom {
			case atom.Script, atom.Style:
				if tt == html.StartTagToken {
					skip++
				}
			case atom.Iframe, atom.Embed, atom.Video:
				if src := attr(token, "src"); src != "" {
					sources = append(sources, absolute(src))
				}
			}
		case html.EndTagToken:
			token := z.Token()
			if (token.DataAtom == atom.Script || token.DataAtom == atom.Style) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				if text := strings.TrimSpace(string(z.Text())); text != "" {
					texts = append(texts, text)
				}
			}
		}
	}
}

func summarize(sources, texts []string) string {
	if len(sources) > 0 {
		return printable(stripper.Replace(strings.Join(sources, ", ")))
	}
	return printable(stripper.Replace(strings.Join(texts, " ")))
}

// printable turns whitespace controls into spaces and drops every other non-printable rune,
// so escape sequences in the fragment never reach the terminal.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsPrint(r):
			return r
		default:
			return -1
		}
	}, s)
}

func attr(token html.Token, name string) string {
	for _, a := range token.Attr {
		if a.Key == name {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// absolute completes protocol-relative URLs, which the catalog uses for embeds.
func absolute(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}
