package records

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/constants"
	"github.com/stl-ops/dashboard/internal/pkg/logger"
)

// Client fetches historical metric records from the upstream REST record
// source. It implements compare.RecordSource.
type Client struct {
	baseURL string
	hc      *http.Client

	retryInterval time.Duration
	maxRetries    uint64
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:       baseURL,
		hc:            &http.Client{Timeout: 15 * time.Second},
		retryInterval: 10 * time.Millisecond,
		maxRetries:    10,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// buckets covers both labelled two-period payload shapes the upstream
// returns; only one pair is populated per response.
type buckets struct {
	FirstDate   []domain.MetricRecord `json:"FirstDate"`
	SecondDate  []domain.MetricRecord `json:"SecondDate"`
	FirstRange  []domain.MetricRecord `json:"FirstRange"`
	SecondRange []domain.MetricRecord `json:"SecondRange"`
}

// Records fetches the record batch backing one comparison request. Both
// comparison periods arrive in a single response; the engine does its own
// period filtering, so the labelled bucket shapes are simply flattened.
func (c *Client) Records(ctx context.Context, domainName string, req domain.ComparisonRequest) ([]domain.MetricRecord, error) {
	u := fmt.Sprintf("%s/api/v1/history/%s?%s", c.baseURL, domainName, historyQuery(req).Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUpstreamUnavailable, err.Error())
	}

	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", constants.ErrUpstreamUnavailable, env.Message)
	}

	return unwrap(ctx, env.Data), nil
}

// unwrap tolerates the three payload shapes: a flat record array, or the
// FirstDate/SecondDate and FirstRange/SecondRange bucket pairs. An
// unrecognized shape is logged and treated as no data.
func unwrap(ctx context.Context, data []byte) []domain.MetricRecord {
	if len(data) == 0 {
		return nil
	}

	var flat []domain.MetricRecord
	if err := sonic.Unmarshal(data, &flat); err == nil {
		return flat
	}

	var b buckets
	if err := sonic.Unmarshal(data, &b); err == nil {
		merged := make([]domain.MetricRecord, 0,
			len(b.FirstDate)+len(b.SecondDate)+len(b.FirstRange)+len(b.SecondRange))
		merged = append(merged, b.FirstDate...)
		merged = append(merged, b.SecondDate...)
		merged = append(merged, b.FirstRange...)
		merged = append(merged, b.SecondRange...)
		return merged
	}

	logger.Warnf(ctx, "records: unexpected payload shape, treating as no data")
	return nil
}

func historyQuery(req domain.ComparisonRequest) url.Values {
	q := url.Values{}
	q.Set("category", string(req.Category))
	q.Set("timeMode", string(req.TimeMode))

	switch req.TimeMode {
	case domain.TimeModeSpecificDate:
		q.Set("firstDate", req.FirstDate)
		q.Set("secondDate", req.SecondDate)
	case domain.TimeModeDateRange:
		q.Set("firstRangeStart", req.FirstRangeStart)
		q.Set("firstRangeEnd", req.FirstRangeEnd)
		q.Set("secondRangeStart", req.SecondRangeStart)
		q.Set("secondRangeEnd", req.SecondRangeEnd)
	}

	if req.GameCategoryFilter != domain.GameCategoryNone {
		q.Set("gameCategory", fmt.Sprintf("%d", int(req.GameCategoryFilter)))
	}

	return q
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	var body []byte

	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := c.hc.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			if readErr != nil {
				return fmt.Errorf("read body: %w", readErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}
