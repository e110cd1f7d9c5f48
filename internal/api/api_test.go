package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/store"
	"github.com/stl-ops/dashboard/internal/service/compare"
)

type fixedSource struct {
	records []domain.MetricRecord
}

func (s fixedSource) Records(context.Context, string, domain.ComparisonRequest) ([]domain.MetricRecord, error) {
	return s.records, nil
}

func newTestAPI(t *testing.T) *APIService {
	t.Helper()

	src := fixedSource{records: []domain.MetricRecord{
		{Date: "2024-05-01", DrawOrder: 1, Winners: 10, PayoutAmount: 5000, Bettors: 40, BetAmount: 800},
	}}

	svc, err := NewAPIService(
		compare.NewService(compare.Betting(), src),
		compare.NewService(compare.Winning(), src),
		nil,
		[]string{"http://localhost:3000"},
	)
	require.NoError(t, err)
	return svc
}

func doJSON(t *testing.T, svc *APIService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func TestCompareWinsEndpoint(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodPost, "/api/v1/wins/compare",
		`{"category":"totals","timeMode":"specific_date","firstDate":"2024-05-01","secondDate":"2024-05-02"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    compare.Comparison `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Result.Draws, 3)
	assert.Equal(t, float64(10), resp.Data.Result.Draws[0].Pairs[0].First)
	assert.Len(t, resp.Data.Legend, 4)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCompareValidation(t *testing.T) {
	svc := newTestAPI(t)

	t.Run("missing category", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodPost, "/api/v1/bets/compare",
			`{"timeMode":"specific_date"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad time mode", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodPost, "/api/v1/bets/compare",
			`{"category":"totals","timeMode":"quarterly"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodPost, "/api/v1/bets/compare", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompareBothEndpoint(t *testing.T) {
	svc := newTestAPI(t)

	rec := doJSON(t, svc, http.MethodPost, "/api/v1/compare",
		`{"category":"totals","timeMode":"specific_date","firstDate":"2024-05-01","secondDate":"2024-05-02"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Bets *compare.Comparison `json:"bets"`
			Wins *compare.Comparison `json:"wins"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Data.Bets)
	require.NotNil(t, resp.Data.Wins)
	assert.Equal(t, float64(40), resp.Data.Bets.Result.Draws[0].Pairs[0].First)
	assert.Equal(t, float64(10), resp.Data.Wins.Result.Draws[0].Pairs[0].First)
}

func TestRegionsEndpoint(t *testing.T) {
	svc := newTestAPI(t)

	t.Run("per-domain lists differ", func(t *testing.T) {
		for domainName, marker := range map[string]string{"bets": "MIMAROPA", "wins": "IV-B"} {
			rec := doJSON(t, svc, http.MethodGet, "/api/v1/regions?domain="+domainName, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Data []string `json:"data"`
			}
			require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Data, 17)
			assert.Contains(t, resp.Data, marker)
		}
	})

	t.Run("unknown domain", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodGet, "/api/v1/regions?domain=lotto", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type fakeStore struct {
	store.Store
	upserted []store.DrawMetricUpsert
}

func (s *fakeStore) UpsertDrawMetrics(_ context.Context, items []store.DrawMetricUpsert) (int64, error) {
	s.upserted = append(s.upserted, items...)
	return int64(len(items)), nil
}

func TestBackfillEndpoint(t *testing.T) {
	src := fixedSource{}
	st := &fakeStore{}
	svc, err := NewAPIService(
		compare.NewService(compare.Betting(), src),
		compare.NewService(compare.Winning(), src),
		st,
		nil,
	)
	require.NoError(t, err)

	t.Run("upserts rows", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodPost, "/api/v1/records/backfill",
			`{"items":[{"date":"2024-05-01","drawOrder":1,"region":"Region VII","bettors":12}]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, st.upserted, 1)
		assert.Equal(t, "Region VII", st.upserted[0].Region)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		rec := doJSON(t, svc, http.MethodPost, "/api/v1/records/backfill", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not mounted without a store", func(t *testing.T) {
		rec := doJSON(t, newTestAPI(t), http.MethodPost, "/api/v1/records/backfill", `{"items":[]}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	svc := newTestAPI(t)
	rec := doJSON(t, svc, http.MethodGet, "/api/v1/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
