package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEnumMetrics() {
	r.ColoringsEnumerated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "colortrade_colorings_enumerated_total",
			Help: "Total number of proper colorings produced by the enumerator",
		},
	)

	r.ColoringsDistinct = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "colortrade_colorings_distinct",
			Help: "Number of distinct colorings after dedupe in the last run",
		},
	)

	r.EnumBranches = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "colortrade_enum_branches_total",
			Help: "Total number of first-level search branches run",
		},
	)
}
