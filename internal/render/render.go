// Package render draws the banner line the runner prints before each demo.
// Demo output itself is never styled.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Banner renders demo titles.
type Banner struct {
	plain bool
	style lipgloss.Style
}

// NewBanner returns a Banner. When plain is true, or out is not a terminal,
// banners are plain text.
func NewBanner(out io.Writer, color string, plain bool) *Banner {
	b := &Banner{plain: plain || !IsTTY(out)}
	b.style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))

	return b
}

// Plain reports whether b renders without styling.
func (b *Banner) Plain() bool { return b.plain }

// Render returns "== <Title> ==" for title, title-cased.
func (b *Banner) Render(title string) string {
	text := "== " + Title(title) + " =="
	if b.plain {
		return text
	}

	return b.style.Render(text)
}

// Title title-cases words separated by spaces, dashes or underscores.
func Title(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return titler.String(strings.Join(strings.Fields(s), " "))
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
