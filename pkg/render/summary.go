package render

import (
	"encoding/json"
	"regexp"

	"page-search-go/pkg/models"
)

// NoSummary is shown when the backend returns neither a summary nor an error
const NoSummary = "No summary."

// embeddedObject spans from the first '{' to the last '}' of the text
var embeddedObject = regexp.MustCompile(`\{[\s\S]*\}`)

// Summary renders a summarize result. A summary that embeds a JSON object
// with a string "answer" shows that answer; anything else shows the raw text.
func Summary(res *models.SummaryResult) Display {
	if res == nil || res.Summary == "" {
		if res != nil && res.Error != "" {
			return Message(res.Error, ToneError)
		}
		return Message(NoSummary, ToneInfo)
	}

	if answer, ok := ExtractAnswer(res.Summary); ok {
		return Display{Tone: ToneInfo, Format: FormatMarkup, Body: toMarkup(answer)}
	}
	return Message(res.Summary, ToneInfo)
}

// ExtractAnswer looks for an embedded JSON object in text and returns its
// "answer" field. It reports false when there is no candidate, the candidate
// is not valid JSON, or the answer is missing or not a string.
func ExtractAnswer(text string) (string, bool) {
	candidate := embeddedObject.FindString(text)
	if candidate == "" {
		return "", false
	}

	var parsed struct {
		Answer *string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return "", false
	}
	if parsed.Answer == nil {
		return "", false
	}
	return *parsed.Answer, true
}
