package parser

import (
	"strings"
	"time"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

// dateLayouts are the renderings excelize produces for date cells, tried in
// order. The ISO forms cover text-entered dates; the m/d/yy forms cover the
// default number formats excelize applies to time values.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/06 15:04",
	"01/02/06 15:04",
	"1/2/2006",
	"01/02/2006",
	"2-Jan-06",
}

// Classify lifts one raw cell string into the Value union. excelize surfaces
// every cell as text, so date detection happens once here and downstream
// coercion never re-inspects types.
func Classify(raw string) models.Value {
	trimmed := strings.TrimSpace(raw)
	// "NaN" and "#N/A" are what pandas NaN and Excel's NA error render as.
	if trimmed == "" || trimmed == "NaN" || trimmed == "#N/A" {
		return models.EmptyValue()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return models.DateValue(t)
		}
	}
	return models.TextValue(raw)
}

// AsText returns the cell's text representation: "" for empty cells, the ISO
// calendar date for date cells, otherwise the text verbatim. Trimming is the
// caller's responsibility at the point of use.
func AsText(v models.Value) string {
	switch v.Kind {
	case models.KindEmpty:
		return ""
	case models.KindDate:
		return v.Date.Format("2006-01-02")
	default:
		return v.Text
	}
}

// ToISODate returns YYYY-MM-DD for date cells (time-of-day discarded), "" for
// empty cells, and the trimmed text for anything else. Total over the union:
// malformed input degrades to text, never to an error.
func ToISODate(v models.Value) string {
	switch v.Kind {
	case models.KindEmpty:
		return ""
	case models.KindDate:
		return v.Date.Format("2006-01-02")
	default:
		return strings.TrimSpace(v.Text)
	}
}
