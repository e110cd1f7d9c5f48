package compare

import (
	"context"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/logger"
)

// Engine turns raw metric records into chart-ready comparison series for one
// metric domain. It is a pure function of (records, request): no I/O, no
// shared state, safe for concurrent use.
type Engine struct {
	domain    Domain
	drawProcs map[domain.Category]drawProcessor
	rankProcs map[domain.Category]struct{}
}

func NewEngine(d Domain) *Engine {
	e := &Engine{domain: d}

	// the fixed category dispatch table: five draw-indexed entries plus the
	// two ranking entries
	e.drawProcs = map[domain.Category]drawProcessor{
		domain.CategoryTotals:           d.sumTotals,
		domain.CategoryByBetTypeCount:   d.sumByBetType,
		domain.CategoryByBetTypeAmount:  d.sumByBetType,
		domain.CategoryByGameTypeCount:  d.sumByGameType(d.Count),
		domain.CategoryByGameTypeAmount: d.sumByGameType(d.Amount),
	}
	e.rankProcs = map[domain.Category]struct{}{
		domain.CategoryRegionRankingValue: {},
		domain.CategoryRegionRankingCount: {},
	}

	return e
}

// subMetricKeys returns the ordered breakdown keys of a draw-indexed
// category. Pair ordering in every result row follows this list, as does the
// legend.
func (e *Engine) subMetricKeys(c domain.Category) []string {
	switch c {
	case domain.CategoryTotals:
		return []string{e.domain.CountKey, e.domain.AmountKey}
	case domain.CategoryByBetTypeCount, domain.CategoryByBetTypeAmount:
		return e.domain.BetTypes
	case domain.CategoryByGameTypeCount, domain.CategoryByGameTypeAmount:
		keys := make([]string, len(e.domain.GameCategories))
		for i, cat := range e.domain.GameCategories {
			keys[i] = cat.String()
		}
		return keys
	}
	return nil
}

// Compare runs the requested dimension processor once per comparison period
// and assembles both periods' values side by side. Unknown categories and
// time modes are logged and yield an empty result rather than an error; the
// dashboard never hard-fails on an unexpected request.
func (e *Engine) Compare(ctx context.Context, records []domain.MetricRecord, req domain.ComparisonRequest) domain.ComparisonResult {
	res := domain.ComparisonResult{Category: req.Category}

	first, second, ok := periodsFor(req)
	if !ok {
		logger.Warnf(ctx, "compare: unknown time mode %q, returning empty result", req.TimeMode)
		return res
	}
	res.Labels = domain.PeriodLabels{First: first.Label(), Second: second.Label()}

	if proc, ok := e.drawProcs[req.Category]; ok {
		a := proc(records, first, req.GameCategoryFilter)
		b := proc(records, second, req.GameCategoryFilter)
		res.Draws = e.assembleDraws(req.Category, a, b)
		return res
	}

	if _, ok := e.rankProcs[req.Category]; ok {
		a := e.domain.rankByRegion(records, first, req.GameCategoryFilter)
		b := e.domain.rankByRegion(records, second, req.GameCategoryFilter)
		res.Regions = e.assembleRegions(a, b)
		return res
	}

	logger.Warnf(ctx, "compare: unknown category %q, returning empty result", req.Category)
	return res
}

func (e *Engine) assembleDraws(c domain.Category, first, second drawSums) []domain.DrawEntry {
	keys := e.subMetricKeys(c)
	draws := make([]domain.DrawEntry, domain.DrawCount)
	for i := 0; i < domain.DrawCount; i++ {
		pairs := make([]domain.SeriesPair, len(keys))
		for j, key := range keys {
			pairs[j] = domain.SeriesPair{
				Key:    key,
				First:  valueAt(first, i, j),
				Second: valueAt(second, i, j),
			}
		}
		draws[i] = domain.DrawEntry{DrawOrder: i + 1, Pairs: pairs}
	}
	return draws
}

func (e *Engine) assembleRegions(first, second map[string]float64) []domain.RegionEntry {
	regions := make([]domain.RegionEntry, len(e.domain.Regions))
	for i, region := range e.domain.Regions {
		regions[i] = domain.RegionEntry{
			Region:     region,
			FirstRank:  first[region],
			SecondRank: second[region],
		}
	}
	return regions
}

func valueAt(s drawSums, i, j int) float64 {
	if j >= len(s[i]) {
		return 0
	}
	return s[i][j]
}
