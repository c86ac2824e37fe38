package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the metrics of colortrade pipeline runs
type Registry struct {
	// Enumeration
	ColoringsEnumerated prometheus.Counter
	ColoringsDistinct   prometheus.Gauge
	EnumBranches        prometheus.Counter

	// Trade graph
	PairsTested       *prometheus.CounterVec
	TradesFound       *prometheus.CounterVec
	TradeGraphNodes   prometheus.Gauge
	TradeGraphEdges   prometheus.Gauge
	TradeComponents   prometheus.Gauge
	ComponentSizeHist prometheus.Histogram

	// Phases
	PhaseDuration *prometheus.HistogramVec
	RunsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initEnumMetrics()
	r.initTradeMetrics()
	r.initPhaseMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
