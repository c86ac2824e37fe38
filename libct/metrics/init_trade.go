package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTradeMetrics() {
	r.PairsTested = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "colortrade_pairs_tested_total",
			Help: "Total number of coloring pairs tested for a trade",
		},
		[]string{"rule"},
	)

	r.TradesFound = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "colortrade_trades_found_total",
			Help: "Total number of trade graph edges found",
		},
		[]string{"rule"},
	)

	r.TradeGraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "colortrade_trade_graph_nodes",
			Help: "Number of nodes in the last trade graph",
		},
	)

	r.TradeGraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "colortrade_trade_graph_edges",
			Help: "Number of edges in the last trade graph",
		},
	)

	r.TradeComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "colortrade_trade_graph_components",
			Help: "Number of connected components in the last trade graph",
		},
	)

	r.ComponentSizeHist = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "colortrade_component_size",
			Help:    "Sizes of trade graph connected components",
			Buckets: []float64{1, 2, 4, 8, 16, 64, 256, 1024, 8192},
		},
	)
}
