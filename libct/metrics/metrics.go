package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline phase labels
const (
	PhaseEnumerate = "enumerate"
	PhaseBuild     = "build"
	PhaseStats     = "stats"
)

// RecordPhase records the duration of a pipeline phase
func (r *Registry) RecordPhase(phase string, duration time.Duration) {
	r.PhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordEnumeration records the outcome of an enumeration phase
func (r *Registry) RecordEnumeration(enumerated, distinct, branches int) {
	r.ColoringsEnumerated.Add(float64(enumerated))
	r.ColoringsDistinct.Set(float64(distinct))
	r.EnumBranches.Add(float64(branches))
}

// RecordTradeGraph records the shape of a built trade graph
func (r *Registry) RecordTradeGraph(rule string, nodes, edges int) {
	r.PairsTested.WithLabelValues(rule).Add(float64(nodes * (nodes - 1) / 2))
	r.TradesFound.WithLabelValues(rule).Add(float64(edges))
	r.TradeGraphNodes.Set(float64(nodes))
	r.TradeGraphEdges.Set(float64(edges))
}

// RecordComponents records the connected component sizes of a trade graph
func (r *Registry) RecordComponents(sizes []int) {
	r.TradeComponents.Set(float64(len(sizes)))
	for _, sz := range sizes {
		r.ComponentSizeHist.Observe(float64(sz))
	}
}

// RecordRun records a completed pipeline run
func (r *Registry) RecordRun(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile writes every metric in this registry to path in the Prometheus text format
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
