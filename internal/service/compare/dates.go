package compare

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// layouts tried after the fast-path prefix check. Upstream rows sometimes
// embed a time-of-day, which must be stripped before comparison.
var dayLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// NormalizeDay reduces a date-like string to canonical YYYY-MM-DD. It returns
// "" when nothing parseable is found; an empty day never matches anything.
func NormalizeDay(dateLike string) string {
	s := strings.TrimSpace(dateLike)
	if len(s) >= len(dayLayout) {
		if _, err := time.Parse(dayLayout, s[:len(dayLayout)]); err == nil {
			return s[:len(dayLayout)]
		}
	}

	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dayLayout)
		}
	}

	return ""
}

// MatchesDay reports whether recordDate and target fall on the same calendar
// day, ignoring any time-of-day component.
func MatchesDay(recordDate, target string) bool {
	d := NormalizeDay(recordDate)
	return d != "" && d == NormalizeDay(target)
}

// MatchesRange reports whether recordDate falls inside [start, end],
// inclusive, compared as calendar days. A reversed range (start > end) never
// matches; callers are responsible for ordering the bounds.
func MatchesRange(recordDate, start, end string) bool {
	d := NormalizeDay(recordDate)
	s := NormalizeDay(start)
	e := NormalizeDay(end)
	if d == "" || s == "" || e == "" {
		return false
	}
	if s > e {
		return false
	}
	return s <= d && d <= e
}
