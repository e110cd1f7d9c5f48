package domain

import (
	"strconv"
	"strings"
)

// DrawCount is the number of scheduled draws per day.
const DrawCount = 3

// FlexNumber is a numeric field that upstream may serialize as a number, a
// numeric string, or null. Anything unparseable decodes to 0 instead of
// failing the whole batch.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexNumber(v)
	return nil
}

func (f FlexNumber) Float() float64 {
	return float64(f)
}

// GameCategory identifies one of the four game variants. Zero means
// none/unfiltered. Upstream rows may carry either the numeric id or the name.
type GameCategory int

const (
	GameCategoryNone GameCategory = iota
	GameCategoryPares
	GameCategorySwer2
	GameCategorySwer3
	GameCategorySwer4
)

var gameCategoryNames = map[GameCategory]string{
	GameCategoryPares: "Pares",
	GameCategorySwer2: "Swer2",
	GameCategorySwer3: "Swer3",
	GameCategorySwer4: "Swer4",
}

func (g GameCategory) String() string {
	if name, ok := gameCategoryNames[g]; ok {
		return name
	}
	return ""
}

func (g *GameCategory) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*g = GameCategoryNone
		return nil
	}
	if id, err := strconv.Atoi(s); err == nil {
		*g = GameCategory(id)
		return nil
	}
	for id, name := range gameCategoryNames {
		if strings.EqualFold(name, s) {
			*g = id
			return nil
		}
	}
	*g = GameCategoryNone
	return nil
}

// BetTypeMetrics is the nested form of per-bet-type sub-totals.
type BetTypeMetrics struct {
	Tumbok FlexNumber `json:"Tumbok"`
	Sahod  FlexNumber `json:"Sahod"`
	Ramble FlexNumber `json:"Ramble"`
}

// MetricRecord is one row of historical aggregate data as supplied by the
// record source. Which numeric fields are populated depends on the dataset
// the row came from; absent fields read as 0.
type MetricRecord struct {
	Date         string       `json:"date"`
	DrawOrder    int          `json:"drawOrder"`
	Region       string       `json:"region"`
	GameCategory GameCategory `json:"gameCategory"`

	Winners      FlexNumber `json:"winners"`
	PayoutAmount FlexNumber `json:"payoutAmount"`
	Bettors      FlexNumber `json:"bettors"`
	BetAmount    FlexNumber `json:"betAmount"`

	Tumbok   FlexNumber      `json:"tumbok"`
	Sahod    FlexNumber      `json:"sahod"`
	Ramble   FlexNumber      `json:"ramble"`
	BetTypes *BetTypeMetrics `json:"BetTypes,omitempty"`

	Rank FlexNumber `json:"rank"`
}

// BetTypeValue returns the sub-total for a bet type, preferring the nested
// BetTypes form when present over the flat fields.
func (r *MetricRecord) BetTypeValue(betType string) float64 {
	if r.BetTypes != nil {
		switch betType {
		case "Tumbok":
			return r.BetTypes.Tumbok.Float()
		case "Sahod":
			return r.BetTypes.Sahod.Float()
		case "Ramble":
			return r.BetTypes.Ramble.Float()
		}
		return 0
	}
	switch betType {
	case "Tumbok":
		return r.Tumbok.Float()
	case "Sahod":
		return r.Sahod.Float()
	case "Ramble":
		return r.Ramble.Float()
	}
	return 0
}
