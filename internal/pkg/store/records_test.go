package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stl-ops/dashboard/internal/domain"
)

func TestListDrawMetricsQuery(t *testing.T) {
	t.Run("day bounds only", func(t *testing.T) {
		sql, args, err := listDrawMetricsQuery(ListDrawMetricsOpts{
			From: "2024-05-01",
			To:   "2024-05-31",
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "FROM draw_metrics")
		assert.Contains(t, sql, "metric_date >= $1")
		assert.Contains(t, sql, "metric_date <= $2")
		assert.NotContains(t, sql, "game_category_id")
		assert.Equal(t, []interface{}{"2024-05-01", "2024-05-31"}, args)
	})

	t.Run("game category predicate", func(t *testing.T) {
		sql, args, err := listDrawMetricsQuery(ListDrawMetricsOpts{
			From:         "2024-05-01",
			To:           "2024-05-01",
			GameCategory: domain.GameCategorySwer2,
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "game_category_id = $3")
		assert.Equal(t, []interface{}{"2024-05-01", "2024-05-01", 2}, args)
	})
}

func TestUpsertDrawMetricsQuery(t *testing.T) {
	sql, args, err := upsertDrawMetricsQuery([]DrawMetricUpsert{
		{Date: "2024-05-01", DrawOrder: 1, Region: "Region VII", Bettors: 12},
		{Date: "2024-05-01", DrawOrder: 2, Region: "Region VII", Bettors: 7},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO draw_metrics")
	assert.Contains(t, sql, "ON CONFLICT (metric_date, draw_order, region, game_category_id)")
	assert.Contains(t, sql, "bettors = excluded.bettors")
	// 14 columns per row, 2 rows
	assert.Len(t, args, 28)
	assert.Equal(t, "2024-05-01", args[0])
}

func TestListRegionRanksQuery(t *testing.T) {
	sql, args, err := listRegionRanksQuery(ListRegionRanksOpts{
		From:   "2024-05-01",
		To:     "2024-05-31",
		Domain: "wins",
		Metric: MeasureAmount,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM region_ranks")
	assert.Contains(t, sql, "domain = $3")
	assert.Contains(t, sql, "metric = $4")
	assert.Equal(t, []interface{}{"2024-05-01", "2024-05-31", "wins", "amount"}, args)
}

func TestRequestBounds(t *testing.T) {
	t.Run("specific dates", func(t *testing.T) {
		from, to, ok := requestBounds(domain.ComparisonRequest{
			TimeMode:   domain.TimeModeSpecificDate,
			FirstDate:  "2024-05-02",
			SecondDate: "2024-05-01",
		})
		require.True(t, ok)
		assert.Equal(t, "2024-05-01", from)
		assert.Equal(t, "2024-05-02", to)
	})

	t.Run("ranges span both periods", func(t *testing.T) {
		from, to, ok := requestBounds(domain.ComparisonRequest{
			TimeMode:         domain.TimeModeDateRange,
			FirstRangeStart:  "2024-06-01",
			FirstRangeEnd:    "2024-06-30",
			SecondRangeStart: "2024-05-01",
			SecondRangeEnd:   "2024-05-31",
		})
		require.True(t, ok)
		assert.Equal(t, "2024-05-01", from)
		assert.Equal(t, "2024-06-30", to)
	})

	t.Run("timestamps are reduced to days", func(t *testing.T) {
		from, to, ok := requestBounds(domain.ComparisonRequest{
			TimeMode:   domain.TimeModeSpecificDate,
			FirstDate:  "2024-05-01T08:00:00Z",
			SecondDate: "2024-05-02T09:00:00Z",
		})
		require.True(t, ok)
		assert.Equal(t, "2024-05-01", from)
		assert.Equal(t, "2024-05-02", to)
	})

	t.Run("nothing parseable", func(t *testing.T) {
		_, _, ok := requestBounds(domain.ComparisonRequest{
			TimeMode:  domain.TimeModeSpecificDate,
			FirstDate: "bogus",
		})
		assert.False(t, ok)
	})

	t.Run("unknown time mode", func(t *testing.T) {
		_, _, ok := requestBounds(domain.ComparisonRequest{TimeMode: domain.TimeMode("quarterly")})
		assert.False(t, ok)
	})
}

func TestDrawMetricRowToRecord(t *testing.T) {
	row := drawMetricRow{
		MetricDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DrawOrder:    2,
		Region:       "Region VII",
		GameCategory: 2,
		Winners:      12,
		PayoutAmount: 3400,
		TumbokCount:  5,
		TumbokAmount: 500,
	}

	t.Run("count measure", func(t *testing.T) {
		rec := row.toRecord(MeasureCount)
		assert.Equal(t, "2024-05-01", rec.Date)
		assert.Equal(t, domain.GameCategorySwer2, rec.GameCategory)
		assert.Equal(t, float64(5), rec.BetTypeValue("Tumbok"))
	})

	t.Run("amount measure", func(t *testing.T) {
		rec := row.toRecord(MeasureAmount)
		assert.Equal(t, float64(500), rec.BetTypeValue("Tumbok"))
	})
}
