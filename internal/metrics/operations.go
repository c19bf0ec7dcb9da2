// Package metrics holds the Prometheus instruments for Ripple operations
// and the HTTP middleware used by the MCP server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation Prometheus metrics.
var (
	IngestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ripple",
			Name:      "ingest_total",
			Help:      "Total number of ingest attempts",
		},
		[]string{"status"},
	)

	SearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ripple",
			Name:      "search_total",
			Help:      "Total number of searches",
		},
		[]string{"status"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ripple",
			Name:      "operation_duration_seconds",
			Help:      "Duration of tracked operations in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"phase", "name"},
	)

	AssetsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ripple",
			Name:      "assets_stored",
			Help:      "Number of assets in the store",
		},
	)
)

func init() {
	prometheus.MustRegister(IngestTotal)
	prometheus.MustRegister(SearchTotal)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(AssetsStored)
}

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ObserveOperation records one tracked operation. Ingest and Search
// phases also bump their counters.
func ObserveOperation(phase, name string, d time.Duration, err error) {
	OperationDuration.WithLabelValues(phase, name).Observe(d.Seconds())

	status := StatusOK
	if err != nil {
		status = StatusError
	}

	switch phase {
	case "Ingest":
		IngestTotal.WithLabelValues(status).Inc()
	case "Search":
		SearchTotal.WithLabelValues(status).Inc()
	}
}
