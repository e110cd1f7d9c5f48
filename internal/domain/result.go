package domain

// SeriesPair carries one sub-metric's value for both comparison periods.
type SeriesPair struct {
	Key    string  `json:"key"`
	First  float64 `json:"first"`
	Second float64 `json:"second"`
}

// DrawEntry is one row of a draw-indexed comparison. Pairs are ordered the
// same way for every draw of a result, matching the legend ordering.
type DrawEntry struct {
	DrawOrder int          `json:"drawOrder"`
	Pairs     []SeriesPair `json:"pairs"`
}

// RegionEntry is one row of a region-ranking comparison.
type RegionEntry struct {
	Region     string  `json:"region"`
	FirstRank  float64 `json:"firstRank"`
	SecondRank float64 `json:"secondRank"`
}

// PeriodLabels are the human-readable names of the two compared periods.
type PeriodLabels struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// ComparisonResult is the chart-ready output of one comparison. Exactly one
// of Draws (always 3 entries) or Regions (always the domain's fixed region
// list) is populated; an unrecognized request yields neither.
type ComparisonResult struct {
	Category Category      `json:"category"`
	Labels   PeriodLabels  `json:"labels"`
	Draws    []DrawEntry   `json:"draws,omitempty"`
	Regions  []RegionEntry `json:"regions,omitempty"`
}

// Rows reports how many entries the result carries.
func (r ComparisonResult) Rows() int {
	if len(r.Draws) > 0 {
		return len(r.Draws)
	}
	return len(r.Regions)
}
