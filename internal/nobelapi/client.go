package nobelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"nobelproxy/internal/config"
	"nobelproxy/internal/model"
)

const (
	endpointNobelPrizes = "nobelPrizes"
	endpointLaureate    = "laureate"
)

// Client talks to the Nobel Prize REST API. It holds no per-request state
// and is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *clientMetrics
}

// New builds a Client from cfg. Calls are traced through otelhttp; when reg
// is non-nil, per-endpoint counters and latency histograms are registered on it.
func New(cfg config.NobelAPIConfig, reg prometheus.Registerer) (*Client, error) {
	return NewWithHTTPClient(cfg, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Timeout(),
	}, reg)
}

// NewWithHTTPClient is New with a caller-supplied *http.Client.
func NewWithHTTPClient(cfg config.NobelAPIConfig, hc *http.Client, reg prometheus.Registerer) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("nobelapi: base url is required")
	}
	c := &Client{baseURL: cfg.BaseURL, http: hc}
	if reg != nil {
		m, err := newClientMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("register nobelapi metrics: %w", err)
		}
		c.metrics = m
	}
	return c, nil
}

// NobelPrizes fetches every prize in ascending order and returns the
// upstream nobelPrizes array untouched. A missing or falsy field yields [].
func (c *Client) NobelPrizes(ctx context.Context) (_ json.RawMessage, err error) {
	defer func(start time.Time) { c.metrics.observe(endpointNobelPrizes, start, err) }(time.Now())

	body, err := c.get(ctx, endpointNobelPrizes, c.baseURL+"/nobelPrizes?sort=asc")
	if err != nil {
		return nil, err
	}

	var envelope model.PrizeList
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamError{Endpoint: endpointNobelPrizes, StatusCode: http.StatusOK, Err: err}
	}
	if isEmptyValue(envelope.NobelPrizes) {
		return model.EmptyList, nil
	}
	return envelope.NobelPrizes, nil
}

// Laureate fetches a single laureate. id is interpolated into the path as
// given; callers are responsible for validating it. An empty body or a
// falsy JSON value (null, false, "", 0) yields [].
func (c *Client) Laureate(ctx context.Context, id string) (_ json.RawMessage, err error) {
	defer func(start time.Time) { c.metrics.observe(endpointLaureate, start, err) }(time.Now())

	body, err := c.get(ctx, endpointLaureate, c.baseURL+"/laureate/"+id)
	if err != nil {
		return nil, err
	}
	if isEmptyValue(body) {
		return model.EmptyList, nil
	}
	if !json.Valid(body) {
		return nil, &UpstreamError{Endpoint: endpointLaureate, StatusCode: http.StatusOK, Err: errors.New("invalid JSON body")}
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailure, err)
	}
	return body, nil
}

// isEmptyValue reports whether b is absent or a falsy JSON scalar:
// null, false, "" or a numeric zero.
func isEmptyValue(b []byte) bool {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "", "null", "false", `""`:
		return true
	}
	if b[0] != '-' && (b[0] < '0' || b[0] > '9') {
		return false
	}
	f, err := strconv.ParseFloat(string(b), 64)
	return err == nil && f == 0
}

// API is the upstream surface consumed by the service layer.
type API interface {
	NobelPrizes(ctx context.Context) (json.RawMessage, error)
	Laureate(ctx context.Context, id string) (json.RawMessage, error)
}

var _ API = (*Client)(nil)
