package compare

import "github.com/stl-ops/dashboard/internal/domain"

// SeriesLegend names and colors one chart series.
type SeriesLegend struct {
	Label      string `json:"label"`
	ColorToken string `json:"colorToken"`
}

// colorTokens are theme keys, one per sub-metric; the second period's series
// uses the muted variant of the same token. Eight entries covers the widest
// breakdown (four game categories).
var colorTokens = []string{
	"chart-blue", "chart-amber", "chart-green", "chart-violet",
	"chart-red", "chart-teal", "chart-pink", "chart-gray",
}

// Legend derives the ordered series labels for a comparison result. The
// ordering is key-major with the first period before the second, which is
// exactly how SeriesPair values are laid out: a mismatch here mislabels
// series silently, so keep the two in lockstep.
func (e *Engine) Legend(req domain.ComparisonRequest) []SeriesLegend {
	first, second, ok := periodsFor(req)
	if !ok {
		return nil
	}
	return e.legendFor(req.Category, first.Label(), second.Label())
}

func (e *Engine) legendFor(c domain.Category, firstLabel, secondLabel string) []SeriesLegend {
	if _, ok := e.rankProcs[c]; ok {
		return []SeriesLegend{
			{Label: firstLabel, ColorToken: colorTokens[0]},
			{Label: secondLabel, ColorToken: colorTokens[0] + "-muted"},
		}
	}

	keys := e.subMetricKeys(c)
	if keys == nil {
		return nil
	}

	legend := make([]SeriesLegend, 0, 2*len(keys))
	for j, key := range keys {
		token := colorTokens[j%len(colorTokens)]
		legend = append(legend,
			SeriesLegend{Label: key + " " + firstLabel, ColorToken: token},
			SeriesLegend{Label: key + " " + secondLabel, ColorToken: token + "-muted"},
		)
	}
	return legend
}
