package render

import "page-search-go/pkg/models"

// SourceLabel prefixes each attribution line
const SourceLabel = "From:"

// Query renders a query result. A nil result clears the display. Sources are
// attributed only when the backend found an answer, in the order received.
func Query(res *models.QueryResult) Display {
	if res == nil {
		return Display{}
	}

	d := Display{Tone: ToneInfo, Format: FormatMarkup}
	if res.Answer != "" {
		d.Body = toMarkup(res.Answer)
	}
	if res.FoundAnswer && len(res.SourceURLs) > 0 {
		d.Attributions = make([]Attribution, 0, len(res.SourceURLs))
		for _, u := range res.SourceURLs {
			d.Attributions = append(d.Attributions, Attribution{Label: SourceLabel, URL: u})
		}
	}
	return d
}
