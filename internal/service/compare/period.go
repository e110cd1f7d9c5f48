package compare

import "github.com/stl-ops/dashboard/internal/domain"

type periodKind int

const (
	periodDay periodKind = iota
	periodRange
)

// Period is one side of a comparison: a single calendar day or an inclusive
// day range.
type Period struct {
	Kind  periodKind
	Date  string
	Start string
	End   string
}

func DayPeriod(date string) Period {
	return Period{Kind: periodDay, Date: date}
}

func RangePeriod(start, end string) Period {
	return Period{Kind: periodRange, Start: start, End: end}
}

func (p Period) matches(recordDate string) bool {
	if p.Kind == periodDay {
		return MatchesDay(recordDate, p.Date)
	}
	return MatchesRange(recordDate, p.Start, p.End)
}

// Label names the period for series legends and result labels.
func (p Period) Label() string {
	if p.Kind == periodDay {
		return NormalizeDay(p.Date)
	}
	return NormalizeDay(p.Start) + " to " + NormalizeDay(p.End)
}

// periodsFor derives the two comparison periods from a request. ok is false
// when the time mode is unrecognized.
func periodsFor(req domain.ComparisonRequest) (first, second Period, ok bool) {
	switch req.TimeMode {
	case domain.TimeModeSpecificDate:
		return DayPeriod(req.FirstDate), DayPeriod(req.SecondDate), true
	case domain.TimeModeDateRange:
		return RangePeriod(req.FirstRangeStart, req.FirstRangeEnd),
			RangePeriod(req.SecondRangeStart, req.SecondRangeEnd), true
	default:
		return Period{}, Period{}, false
	}
}
