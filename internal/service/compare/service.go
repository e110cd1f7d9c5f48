package compare

import (
	"context"
	"fmt"

	"github.com/stl-ops/dashboard/internal/domain"
)

// RecordSource supplies the raw records a comparison aggregates over. The
// Postgres store and the upstream HTTP client both implement it.
type RecordSource interface {
	Records(ctx context.Context, domainName string, req domain.ComparisonRequest) ([]domain.MetricRecord, error)
}

// Comparison bundles the assembled series with its legend so the frontend
// renders both from one payload.
type Comparison struct {
	Result domain.ComparisonResult `json:"result"`
	Legend []SeriesLegend          `json:"legend"`
}

// Service wires the engine to a record source for one metric domain.
type Service struct {
	engine *Engine
	source RecordSource
}

func NewService(d Domain, source RecordSource) *Service {
	return &Service{engine: NewEngine(d), source: source}
}

func (s *Service) Compare(ctx context.Context, req domain.ComparisonRequest) (*Comparison, error) {
	records, err := s.source.Records(ctx, s.engine.domain.Name, req)
	if err != nil {
		return nil, fmt.Errorf("source.Records: %w", err)
	}

	return &Comparison{
		Result: s.engine.Compare(ctx, records, req),
		Legend: s.engine.Legend(req),
	}, nil
}

// Regions returns the domain's fixed region ordering in short-code form.
func (s *Service) Regions() []string {
	return s.engine.domain.Regions
}
