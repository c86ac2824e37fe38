package libct

import (
	"github.com/2x3systems/colortrade/colortrade"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"
)

// TradeGraph is the graph whose nodes are distinct colorings and whose edges join colorings related by
// a single trade.  It is assembled once, after enumeration completes, and never changes afterwards.
type TradeGraph struct {
	Rule  colortrade.TradeRule
	nodes []*Coloring
	index map[colortrade.Key]int
	edges []TradeEdge // sorted by (A, B)
	adj   [][]int     // ascending
}

// TradeEdge joins nodes A < B of a TradeGraph.
type TradeEdge struct {
	A, B  int
	Trade *Trade // nil unless built with BuildOpts.Annotate
}

// BuildTradeGraph assembles the trade graph over the given colorings.
//
// Nodes are listed in input order (or canonical key order if opts.SortByKey is set);  a coloring whose
// key was already seen is skipped.  Each unordered pair of nodes is tested once, and edges are listed
// in ascending (A, B) order regardless of opts.Workers.
func BuildTradeGraph(colorings []*Coloring, opts colortrade.BuildOpts) (*TradeGraph, error) {
	tg := &TradeGraph{
		Rule:  opts.Rule,
		index: make(map[colortrade.Key]int, len(colorings)),
	}

	if opts.SortByKey {
		tree := redblacktree.NewWithStringComparator()
		for _, C := range colorings {
			if _, found := tree.Get(string(C.key)); !found {
				tree.Put(string(C.key), C)
			}
		}
		it := tree.Iterator()
		for it.Next() {
			tg.addNode(it.Value().(*Coloring))
		}
	} else {
		for _, C := range colorings {
			tg.addNode(C)
		}
	}

	k := len(tg.nodes)
	tg.adj = make([][]int, k)
	rows := make([][]TradeEdge, k)

	detectRow := func(i int) error {
		Ci := tg.nodes[i]
		for j := i + 1; j < k; j++ {
			T, adjacent, err := DetectTrade(Ci, tg.nodes[j], opts.Rule)
			if err != nil {
				return err
			}
			if adjacent {
				edge := TradeEdge{A: i, B: j}
				if opts.Annotate {
					edge.Trade = T
				}
				rows[i] = append(rows[i], edge)
			}
		}
		return nil
	}

	workers := clampWorkers(opts.Workers)
	if workers <= 1 {
		for i := 0; i < k; i++ {
			if err := detectRow(i); err != nil {
				return nil, err
			}
		}
	} else {
		var grp errgroup.Group
		grp.SetLimit(workers)
		for i := 0; i < k; i++ {
			i := i
			grp.Go(func() error {
				return detectRow(i)
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}
	}

	for _, row := range rows {
		for _, e := range row {
			tg.edges = append(tg.edges, e)
			tg.adj[e.A] = append(tg.adj[e.A], e.B)
			tg.adj[e.B] = append(tg.adj[e.B], e.A)
		}
	}

	// adj[i] was filled by rows in ascending A, then ascending B, which leaves it sorted
	klog.V(2).Infof("trade graph (%v): %d nodes, %d edges, %d pairs tested", opts.Rule, k, len(tg.edges), k*(k-1)/2)
	return tg, nil
}

func (tg *TradeGraph) addNode(C *Coloring) {
	if _, exists := tg.index[C.key]; exists {
		return
	}
	tg.index[C.key] = len(tg.nodes)
	tg.nodes = append(tg.nodes, C)
}

// NumNodes returns the number of colorings in this trade graph.
func (tg *TradeGraph) NumNodes() int {
	return len(tg.nodes)
}

// NumEdges returns the number of trades in this trade graph.
func (tg *TradeGraph) NumEdges() int {
	return len(tg.edges)
}

// Node returns the coloring at node index i.
func (tg *TradeGraph) Node(i int) *Coloring {
	return tg.nodes[i]
}

// Nodes returns all nodes in listing order.  The caller must not modify it.
func (tg *TradeGraph) Nodes() []*Coloring {
	return tg.nodes
}

// Lookup returns the node index of the coloring with the given key.
func (tg *TradeGraph) Lookup(key colortrade.Key) (int, bool) {
	i, ok := tg.index[key]
	return i, ok
}

// Edges returns all edges in ascending (A, B) order.  The caller must not modify it.
func (tg *TradeGraph) Edges() []TradeEdge {
	return tg.edges
}

// Neighbors returns the node indexes adjacent to node i, ascending.  The caller must not modify it.
func (tg *TradeGraph) Neighbors(i int) []int {
	return tg.adj[i]
}

// Degree returns the number of trades node i takes part in.
func (tg *TradeGraph) Degree(i int) int {
	return len(tg.adj[i])
}

// HasEdge reports if the colorings with the given keys are joined by a trade.
func (tg *TradeGraph) HasEdge(a, b colortrade.Key) bool {
	i, okA := tg.index[a]
	j, okB := tg.index[b]
	if !okA || !okB {
		return false
	}
	for _, n := range tg.adj[i] {
		if n == j {
			return true
		}
	}
	return false
}
