package compare

import (
	"github.com/shopspring/decimal"

	"github.com/stl-ops/dashboard/internal/domain"
)

// drawSums holds one period's aggregate for a draw-indexed category: per draw
// order (index 0 = first draw), values aligned with the category's sub-metric
// keys. Every processor returns the full fixed shape, zero-filled where no
// records matched.
type drawSums [domain.DrawCount][]float64

// drawProcessor folds records matching one period into a drawSums.
type drawProcessor func(records []domain.MetricRecord, p Period, filter domain.GameCategory) drawSums

// matched applies the two shared filter steps: period membership, then the
// optional game-category filter.
func matched(records []domain.MetricRecord, p Period, filter domain.GameCategory) []domain.MetricRecord {
	out := make([]domain.MetricRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		if !p.matches(r.Date) {
			continue
		}
		if filter != domain.GameCategoryNone && r.GameCategory != filter {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

func drawIndex(r *domain.MetricRecord) (int, bool) {
	if r.DrawOrder < 1 || r.DrawOrder > domain.DrawCount {
		return 0, false
	}
	return r.DrawOrder - 1, true
}

// sumTotals sums the domain's count and amount metrics per draw order.
// Amounts are money, so they accumulate as decimals and round once at the
// end.
func (d Domain) sumTotals(records []domain.MetricRecord, p Period, filter domain.GameCategory) drawSums {
	var counts [domain.DrawCount]float64
	var amounts [domain.DrawCount]decimal.Decimal

	for _, r := range matched(records, p, filter) {
		i, ok := drawIndex(&r)
		if !ok {
			continue
		}
		counts[i] += d.Count(&r)
		amounts[i] = amounts[i].Add(decimal.NewFromFloat(d.Amount(&r)))
	}

	var out drawSums
	for i := 0; i < domain.DrawCount; i++ {
		out[i] = []float64{counts[i], amounts[i].Round(2).InexactFloat64()}
	}
	return out
}

// sumByBetType sums each of the domain's bet-type sub-totals independently
// per draw order. The count and amount variants of this category read the
// same Tumbok/Sahod/Ramble fields; the record source returns a different
// dataset per variant.
func (d Domain) sumByBetType(records []domain.MetricRecord, p Period, filter domain.GameCategory) drawSums {
	var sums [domain.DrawCount][]decimal.Decimal
	for i := range sums {
		sums[i] = make([]decimal.Decimal, len(d.BetTypes))
	}

	for _, r := range matched(records, p, filter) {
		i, ok := drawIndex(&r)
		if !ok {
			continue
		}
		for j, betType := range d.BetTypes {
			sums[i][j] = sums[i][j].Add(decimal.NewFromFloat(r.BetTypeValue(betType)))
		}
	}

	return roundOut(sums)
}

// sumByGameType sums one metric per game category per draw order: a
// per-category sub-filter nested inside the group-by-draw pass.
func (d Domain) sumByGameType(sel func(*domain.MetricRecord) float64) drawProcessor {
	return func(records []domain.MetricRecord, p Period, filter domain.GameCategory) drawSums {
		var sums [domain.DrawCount][]decimal.Decimal
		for i := range sums {
			sums[i] = make([]decimal.Decimal, len(d.GameCategories))
		}

		for _, r := range matched(records, p, filter) {
			i, ok := drawIndex(&r)
			if !ok {
				continue
			}
			for j, cat := range d.GameCategories {
				if r.GameCategory == cat {
					sums[i][j] = sums[i][j].Add(decimal.NewFromFloat(sel(&r)))
				}
			}
		}

		return roundOut(sums)
	}
}

func roundOut(sums [domain.DrawCount][]decimal.Decimal) drawSums {
	var out drawSums
	for i := range sums {
		out[i] = make([]float64, len(sums[i]))
		for j := range sums[i] {
			out[i][j] = sums[i][j].Round(2).InexactFloat64()
		}
	}
	return out
}

// rankByRegion collects the single rank value per region for one period.
// Ranks are not summed: when several rows match one region, the last one
// encountered wins. Regions outside the domain's fixed list are dropped at
// assembly.
func (d Domain) rankByRegion(records []domain.MetricRecord, p Period, filter domain.GameCategory) map[string]float64 {
	ranks := make(map[string]float64, len(d.Regions))
	for _, r := range matched(records, p, filter) {
		ranks[ToShortCode(r.Region)] = r.Rank.Float()
	}
	return ranks
}
