// Package render turns backend results into displayable content.
package render

import (
	"html"
	"strings"
)

// Tone hints how a surface should style a display
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneError
)

// Format says whether Body is plain text or line-break markup
type Format int

const (
	FormatText Format = iota
	FormatMarkup
)

// lineBreak is the markup newlines are converted to
const lineBreak = "<br>"

// Attribution is a labeled link to a source supporting an answer
type Attribution struct {
	Label string
	URL   string
}

// Display is the renderable content of the shared result area
type Display struct {
	Tone         Tone
	Format       Format
	Body         string
	Attributions []Attribution
}

// Message builds a plain text display
func Message(text string, tone Tone) Display {
	return Display{Tone: tone, Format: FormatText, Body: text}
}

// Empty reports whether the display has nothing to show
func (d Display) Empty() bool {
	return d.Body == "" && len(d.Attributions) == 0
}

// HTML renders the display as an HTML fragment. Plain text is escaped,
// markup bodies are emitted as-is.
func (d Display) HTML() string {
	if d.Empty() {
		return ""
	}

	var b strings.Builder
	body := d.Body
	if d.Format == FormatText {
		body = html.EscapeString(body)
	}
	if len(d.Attributions) == 0 && d.Format == FormatText {
		return body
	}

	b.WriteString(`<div class="answer">`)
	b.WriteString(body)
	b.WriteString("</div>")
	for _, a := range d.Attributions {
		u := html.EscapeString(a.URL)
		b.WriteString(`<div class="source">`)
		b.WriteString(html.EscapeString(a.Label))
		b.WriteString(` <a href="` + u + `" target="_blank" rel="noopener noreferrer">` + u + `</a></div>`)
	}
	return b.String()
}

// Plain renders the display for a terminal: line-break markup becomes
// newlines and each attribution gets its own line.
func (d Display) Plain() string {
	var b strings.Builder
	b.WriteString(d.BodyText())
	for _, a := range d.Attributions {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(a.Label + " " + a.URL)
	}
	return b.String()
}

// BodyText returns the body with line-break markup turned back into newlines
func (d Display) BodyText() string {
	if d.Format == FormatMarkup {
		return strings.ReplaceAll(d.Body, lineBreak, "\n")
	}
	return d.Body
}

func toMarkup(text string) string {
	return strings.ReplaceAll(text, "\n", lineBreak)
}
