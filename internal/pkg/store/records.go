package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/store/xpgx"
)

// Bet-type measures selectable from the draw_metrics table. Each row stores
// both the count and amount sub-totals per bet type; the requested measure
// decides which set is surfaced on the returned records.
const (
	MeasureCount  = "count"
	MeasureAmount = "amount"
)

type ListDrawMetricsOpts struct {
	// inclusive day bounds, YYYY-MM-DD
	From string
	To   string

	GameCategory domain.GameCategory

	// "" defaults to MeasureCount
	BetTypeMeasure string
}

type ListRegionRanksOpts struct {
	From string
	To   string

	// "bets" or "wins"
	Domain string

	// MeasureAmount for value-based ranking, MeasureCount for count-based
	Metric string

	GameCategory domain.GameCategory
}

var (
	drawMetricColumns = []string{
		"metric_date", "draw_order", "region", "game_category_id",
		"winners", "payout_amount", "bettors", "bet_amount",
		"tumbok_count", "tumbok_amount", "sahod_count", "sahod_amount",
		"ramble_count", "ramble_amount",
	}
	regionRankColumns = []string{"metric_date", "region", "rank"}
)

type drawMetricRow struct {
	MetricDate   time.Time `db:"metric_date"`
	DrawOrder    int       `db:"draw_order"`
	Region       string    `db:"region"`
	GameCategory int       `db:"game_category_id"`
	Winners      float64   `db:"winners"`
	PayoutAmount float64   `db:"payout_amount"`
	Bettors      float64   `db:"bettors"`
	BetAmount    float64   `db:"bet_amount"`
	TumbokCount  float64   `db:"tumbok_count"`
	TumbokAmount float64   `db:"tumbok_amount"`
	SahodCount   float64   `db:"sahod_count"`
	SahodAmount  float64   `db:"sahod_amount"`
	RambleCount  float64   `db:"ramble_count"`
	RambleAmount float64   `db:"ramble_amount"`
}

func (r drawMetricRow) toRecord(measure string) domain.MetricRecord {
	rec := domain.MetricRecord{
		Date:         r.MetricDate.Format("2006-01-02"),
		DrawOrder:    r.DrawOrder,
		Region:       r.Region,
		GameCategory: domain.GameCategory(r.GameCategory),
		Winners:      domain.FlexNumber(r.Winners),
		PayoutAmount: domain.FlexNumber(r.PayoutAmount),
		Bettors:      domain.FlexNumber(r.Bettors),
		BetAmount:    domain.FlexNumber(r.BetAmount),
	}
	if measure == MeasureAmount {
		rec.Tumbok = domain.FlexNumber(r.TumbokAmount)
		rec.Sahod = domain.FlexNumber(r.SahodAmount)
		rec.Ramble = domain.FlexNumber(r.RambleAmount)
	} else {
		rec.Tumbok = domain.FlexNumber(r.TumbokCount)
		rec.Sahod = domain.FlexNumber(r.SahodCount)
		rec.Ramble = domain.FlexNumber(r.RambleCount)
	}
	return rec
}

// DrawMetricUpsert is one backfill row. Dates are plain days; the counts and
// amounts land in the same columns ListDrawMetrics reads back.
type DrawMetricUpsert struct {
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	DrawOrder    int     `json:"drawOrder" validate:"required,min=1,max=3"`
	Region       string  `json:"region" validate:"required"`
	GameCategory int     `json:"gameCategoryId" validate:"min=0,max=4"`
	Winners      float64 `json:"winners"`
	PayoutAmount float64 `json:"payoutAmount"`
	Bettors      float64 `json:"bettors"`
	BetAmount    float64 `json:"betAmount"`
	TumbokCount  float64 `json:"tumbokCount"`
	TumbokAmount float64 `json:"tumbokAmount"`
	SahodCount   float64 `json:"sahodCount"`
	SahodAmount  float64 `json:"sahodAmount"`
	RambleCount  float64 `json:"rambleCount"`
	RambleAmount float64 `json:"rambleAmount"`
}

type regionRankRow struct {
	MetricDate time.Time `db:"metric_date"`
	Region     string    `db:"region"`
	Rank       float64   `db:"rank"`
}

func listDrawMetricsQuery(opts ListDrawMetricsOpts) sq.SelectBuilder {
	query := builder().Select(drawMetricColumns...).
		From(tableDrawMetrics).
		Where(sq.GtOrEq{"metric_date": opts.From}).
		Where(sq.LtOrEq{"metric_date": opts.To}).
		OrderBy("metric_date, draw_order")

	if opts.GameCategory != domain.GameCategoryNone {
		query = query.Where(sq.Eq{"game_category_id": int(opts.GameCategory)})
	}

	return query
}

func listRegionRanksQuery(opts ListRegionRanksOpts) sq.SelectBuilder {
	query := builder().Select(regionRankColumns...).
		From(tableRegionRanks).
		Where(sq.GtOrEq{"metric_date": opts.From}).
		Where(sq.LtOrEq{"metric_date": opts.To}).
		Where(sq.Eq{"domain": opts.Domain}).
		Where(sq.Eq{"metric": opts.Metric}).
		OrderBy("metric_date, region")

	if opts.GameCategory != domain.GameCategoryNone {
		query = query.Where(sq.Eq{"game_category_id": int(opts.GameCategory)})
	}

	return query
}

func upsertDrawMetricsQuery(items []DrawMetricUpsert) sq.InsertBuilder {
	query := builder().Insert(tableDrawMetrics).Columns(drawMetricColumns...)
	for _, it := range items {
		query = query.Values(
			it.Date, it.DrawOrder, it.Region, it.GameCategory,
			it.Winners, it.PayoutAmount, it.Bettors, it.BetAmount,
			it.TumbokCount, it.TumbokAmount, it.SahodCount, it.SahodAmount,
			it.RambleCount, it.RambleAmount,
		)
	}
	return query.Suffix(`ON CONFLICT (metric_date, draw_order, region, game_category_id) DO UPDATE SET
		winners = excluded.winners, payout_amount = excluded.payout_amount,
		bettors = excluded.bettors, bet_amount = excluded.bet_amount,
		tumbok_count = excluded.tumbok_count, tumbok_amount = excluded.tumbok_amount,
		sahod_count = excluded.sahod_count, sahod_amount = excluded.sahod_amount,
		ramble_count = excluded.ramble_count, ramble_amount = excluded.ramble_amount`)
}

// UpsertDrawMetrics backfills historical rows, replacing existing rows for
// the same date, draw, region and game category.
func (s *store) UpsertDrawMetrics(ctx context.Context, items []DrawMetricUpsert) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	tag, err := s.pool.Execx(ctx, upsertDrawMetricsQuery(items))
	if err != nil {
		return 0, fmt.Errorf("pool.Execx: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *store) ListDrawMetrics(ctx context.Context, opts ListDrawMetricsOpts) ([]domain.MetricRecord, error) {
	rows, err := xpgx.Selectx[drawMetricRow](ctx, s.pool, listDrawMetricsQuery(opts))
	if err != nil {
		return nil, wrapErr(err)
	}

	records := make([]domain.MetricRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord(opts.BetTypeMeasure))
	}
	return records, nil
}

func (s *store) ListRegionRanks(ctx context.Context, opts ListRegionRanksOpts) ([]domain.MetricRecord, error) {
	rows, err := xpgx.Selectx[regionRankRow](ctx, s.pool, listRegionRanksQuery(opts))
	if err != nil {
		return nil, wrapErr(err)
	}

	records := make([]domain.MetricRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.MetricRecord{
			Date:   row.MetricDate.Format("2006-01-02"),
			Region: row.Region,
			Rank:   domain.FlexNumber(row.Rank),
		})
	}
	return records, nil
}

// Records implements compare.RecordSource over the store. The engine does
// the per-period filtering; the store only prefilters to the request's
// overall day bounds.
func (s *store) Records(ctx context.Context, domainName string, req domain.ComparisonRequest) ([]domain.MetricRecord, error) {
	from, to, ok := requestBounds(req)
	if !ok {
		// nothing parseable to query for; the engine zero-fills from here
		return nil, nil
	}

	switch req.Category {
	case domain.CategoryRegionRankingValue, domain.CategoryRegionRankingCount:
		metric := MeasureAmount
		if req.Category == domain.CategoryRegionRankingCount {
			metric = MeasureCount
		}
		records, err := s.ListRegionRanks(ctx, ListRegionRanksOpts{
			From:         from,
			To:           to,
			Domain:       domainName,
			Metric:       metric,
			GameCategory: req.GameCategoryFilter,
		})
		if err != nil {
			return nil, fmt.Errorf("ListRegionRanks: %w", err)
		}
		return records, nil
	default:
		measure := MeasureCount
		if req.Category == domain.CategoryByBetTypeAmount {
			measure = MeasureAmount
		}
		records, err := s.ListDrawMetrics(ctx, ListDrawMetricsOpts{
			From:           from,
			To:             to,
			GameCategory:   req.GameCategoryFilter,
			BetTypeMeasure: measure,
		})
		if err != nil {
			return nil, fmt.Errorf("ListDrawMetrics: %w", err)
		}
		return records, nil
	}
}

// requestBounds finds the smallest day window covering both comparison
// periods.
func requestBounds(req domain.ComparisonRequest) (from, to string, ok bool) {
	var days []string
	switch req.TimeMode {
	case domain.TimeModeSpecificDate:
		days = []string{req.FirstDate, req.SecondDate}
	case domain.TimeModeDateRange:
		days = []string{req.FirstRangeStart, req.FirstRangeEnd, req.SecondRangeStart, req.SecondRangeEnd}
	default:
		return "", "", false
	}

	for _, d := range days {
		n := normalizeDay(d)
		if n == "" {
			continue
		}
		if from == "" || n < from {
			from = n
		}
		if to == "" || n > to {
			to = n
		}
	}

	return from, to, from != ""
}

func normalizeDay(s string) string {
	if len(s) >= 10 {
		if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return s[:10]
		}
	}
	return ""
}
