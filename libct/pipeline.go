package libct

import (
	"encoding/json"
	"io"
	"time"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/2x3systems/colortrade/libct/metrics"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// RunOpts specifies params for a full enumerate -> build -> stats run.
type RunOpts struct {
	Enum    colortrade.EnumOpts
	Build   colortrade.BuildOpts
	Stats   colortrade.StatsOpts
	Metrics *metrics.Registry // optional
}

// Result holds everything a run produced.  All of it is read-only.
type Result struct {
	Graph      *Graph
	Colorings  []*Coloring // distinct, in discovery order
	TradeGraph *TradeGraph
	Stats      colortrade.Stats
}

// Run enumerates the colorings of X, builds their trade graph and computes its statistics.
//
// The phases run strictly one after another:  the trade graph is only assembled once enumeration
// has completed.
func Run(X *Graph, opts RunOpts) (*Result, error) {
	res, err := run(X, opts)
	if opts.Metrics != nil {
		opts.Metrics.RecordRun(err)
	}
	return res, err
}

func run(X *Graph, opts RunOpts) (*Result, error) {
	if X == nil {
		return nil, errors.Wrap(colortrade.ErrInvalidGraph, "nil graph")
	}
	reg := opts.Metrics
	res := &Result{
		Graph: X,
	}

	var (
		emitted int
		err     error
	)
	t0 := time.Now()
	res.Colorings, emitted, err = enumColorings(X, opts.Enum)
	if err != nil {
		return nil, err
	}
	t1 := time.Now()
	klog.V(2).Infof("enumerated %d colorings over %d vertices (%v)", len(res.Colorings), X.NumVertices(), t1.Sub(t0))
	if reg != nil {
		branches := 1
		if clampWorkers(opts.Enum.Workers) > 1 && X.NumVertices() > 0 {
			branches = len(X.palettes[0])
		}
		reg.RecordPhase(metrics.PhaseEnumerate, t1.Sub(t0))
		reg.RecordEnumeration(emitted, len(res.Colorings), branches)
	}

	res.TradeGraph, err = BuildTradeGraph(res.Colorings, opts.Build)
	if err != nil {
		return nil, err
	}
	t2 := time.Now()
	if reg != nil {
		reg.RecordPhase(metrics.PhaseBuild, t2.Sub(t1))
		reg.RecordTradeGraph(opts.Build.Rule.String(), res.TradeGraph.NumNodes(), res.TradeGraph.NumEdges())
	}

	res.Stats = ComputeStats(res.TradeGraph, opts.Stats)
	if reg != nil {
		reg.RecordPhase(metrics.PhaseStats, time.Since(t2))
		reg.RecordComponents(res.Stats.ComponentSizes)
	}

	return res, nil
}

// Coloring returns the coloring numbered idx (zero-based), in trade graph node order.
func (res *Result) Coloring(idx int) (*Coloring, error) {
	k := res.TradeGraph.NumNodes()
	if idx < 0 || idx >= k {
		return nil, errors.Wrapf(colortrade.ErrNoSuchColoring, "%d is not a numbered coloring (have %d)", idx, k)
	}
	return res.TradeGraph.Node(idx), nil
}

type resultDoc struct {
	Rule      string           `json:"rule"`
	Vertices  []string         `json:"vertices"`
	Colorings [][]string       `json:"colorings"` // colors in vertex order
	Edges     [][2]int         `json:"edges"`     // node indexes into colorings
	Trades    []string         `json:"trades,omitempty"`
	Stats     colortrade.Stats `json:"stats"`
}

// WriteJSON writes this result as a single indented JSON document.
func (res *Result) WriteJSON(out io.Writer) error {
	X := res.Graph
	tg := res.TradeGraph

	doc := resultDoc{
		Rule:      tg.Rule.String(),
		Vertices:  append([]string(nil), X.names...),
		Colorings: make([][]string, tg.NumNodes()),
		Edges:     make([][2]int, tg.NumEdges()),
		Stats:     res.Stats,
	}
	for i, C := range tg.nodes {
		row := make([]string, len(C.colors))
		for v := range C.colors {
			row[v] = C.ColorName(VtxID(v))
		}
		doc.Colorings[i] = row
	}
	for i, e := range tg.edges {
		doc.Edges[i] = [2]int{e.A, e.B}
		if e.Trade != nil {
			doc.Trades = append(doc.Trades, e.Trade.Format(X))
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}
