package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"page-search-go/pkg/pages"
	"page-search-go/pkg/render"

	"github.com/muesli/reflow/wordwrap"
)

// Format selects how results are printed
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected text or html)", s)
}

// DefaultWidth is the wrap width for text output
const DefaultWidth = 80

// FormatDisplay renders a result display for the terminal or as HTML
func FormatDisplay(d render.Display, format Format, width int) string {
	if format == FormatHTML {
		return d.HTML() + "\n"
	}
	if d.Empty() {
		return ""
	}

	prefix := ""
	switch d.Tone {
	case render.ToneSuccess:
		prefix = "✓ "
	case render.ToneError:
		prefix = "❌ "
	}

	var b strings.Builder
	b.WriteString(wordwrap.String(prefix+d.BodyText(), width))
	b.WriteString("\n")
	if len(d.Attributions) > 0 {
		b.WriteString("\n")
		for _, a := range d.Attributions {
			b.WriteString(fmt.Sprintf("  %s %s\n", a.Label, a.URL))
		}
	}
	return b.String()
}

// FormatPagesTable formats indexed pages as a table for CLI output
func FormatPagesTable(entries []pages.Entry) string {
	if len(entries) == 0 {
		return pages.EmptyMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderHeader())
	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tPage\tURL")
	fmt.Fprintln(w, strings.Repeat("─", 3)+"\t"+strings.Repeat("─", pages.MaxLabelLen)+"\t"+strings.Repeat("─", 50))

	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, e.Label, e.URL)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d page(s)\n", len(entries)))

	return b.String()
}

// FormatStats formats index statistics as an aligned table
func FormatStats(rows []render.StatRow) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Label, r.Value, r.Description)
	}
	w.Flush()
	return b.String()
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

// renderHeader renders the table header
func renderHeader() string {
	return "Indexed Pages"
}

// Write prints formatted output, ignoring write errors like fmt.Print does
func Write(w io.Writer, content string) {
	fmt.Fprint(w, content)
}
