package store

import (
	"context"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store serves historical draw metrics and region rankings from Postgres.
// Records makes it a compare.RecordSource, interchangeable with the upstream
// HTTP client.
type Store interface {
	Records(ctx context.Context, domainName string, req domain.ComparisonRequest) ([]domain.MetricRecord, error)
	ListDrawMetrics(ctx context.Context, opts ListDrawMetricsOpts) ([]domain.MetricRecord, error)
	ListRegionRanks(ctx context.Context, opts ListRegionRanksOpts) ([]domain.MetricRecord, error)
	UpsertDrawMetrics(ctx context.Context, items []DrawMetricUpsert) (int64, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
