package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics tracks upstream rate provider calls.
type ProviderMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewProviderMetrics(reg prometheus.Registerer) *ProviderMetrics {
	m := &ProviderMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "privatbank_requests_total",
				Help: "Requests sent to the PrivatBank archive API by response status",
			},
			[]string{"currency", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "privatbank_request_duration_seconds",
				Help:    "PrivatBank archive API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"currency"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration)

	return m
}

// ObserveRequest is safe to call on a nil receiver. status 0 means the
// request never got a response.
func (m *ProviderMetrics) ObserveRequest(currency string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}

	m.RequestsTotal.WithLabelValues(currency, label).Inc()
	m.RequestDuration.WithLabelValues(currency).Observe(elapsed.Seconds())
}
