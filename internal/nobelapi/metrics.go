package nobelapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK            = "ok"
	outcomeUpstreamError = "upstream_error"
	outcomeFetchFailure  = "fetch_failure"
)

type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nobel_upstream_requests_total",
				Help: "Total number of calls made to the Nobel Prize API.",
			},
			[]string{"endpoint", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nobel_upstream_request_duration_seconds",
				Help:    "Latency of calls made to the Nobel Prize API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *clientMetrics) observe(endpoint string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	switch {
	case err == nil:
	case IsUpstreamError(err):
		outcome = outcomeUpstreamError
	default:
		outcome = outcomeFetchFailure
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
