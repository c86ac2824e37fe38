package libct

import (
	"sort"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/emirpasic/gods/maps/treemap"
)

// ComputeStats returns the statistics record of the given trade graph.
//
// An empty (or nil) trade graph yields a zero Stats.
func ComputeStats(tg *TradeGraph, opts colortrade.StatsOpts) colortrade.Stats {
	var st colortrade.Stats
	if tg == nil || tg.NumNodes() == 0 {
		return st
	}

	k := tg.NumNodes()
	st.NodeCount = k
	st.EdgeCount = tg.NumEdges()
	st.Degrees = make([]int, k)

	hist := treemap.NewWithIntComparator()
	st.MinDegree = k
	for i := 0; i < k; i++ {
		d := tg.Degree(i)
		st.Degrees[i] = d
		if d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.IsolatedCount++
		}
		count := 0
		if prev, found := hist.Get(d); found {
			count = prev.(int)
		}
		hist.Put(d, count+1)
	}
	st.MeanDegree = float64(2*st.EdgeCount) / float64(k)

	it := hist.Iterator()
	for it.Next() {
		st.DegreeHist = append(st.DegreeHist, colortrade.DegreeCount{
			Degree: it.Key().(int),
			Count:  it.Value().(int),
		})
	}

	comps := tg.Components()
	st.ComponentCount = len(comps)
	st.Components = make([]colortrade.ComponentStats, len(comps))
	st.ComponentSizes = make([]int, len(comps))

	var dist []int
	if opts.Distances {
		dist = make([]int, k)
		for i := range dist {
			dist[i] = -1
		}
	}

	for ci, members := range comps {
		cs := colortrade.ComponentStats{
			Size:     len(members),
			Diameter: -1,
			Radius:   -1,
		}
		degSum := 0
		for _, n := range members {
			degSum += st.Degrees[n]
		}
		cs.Edges = degSum / 2

		if opts.Distances {
			cs.Diameter, cs.Radius = 0, len(members)
			for _, src := range members {
				ecc := tg.eccentricity(src, members, dist)
				if ecc > cs.Diameter {
					cs.Diameter = ecc
				}
				if ecc < cs.Radius {
					cs.Radius = ecc
				}
			}
		}

		st.Components[ci] = cs
		st.ComponentSizes[ci] = cs.Size
	}
	sort.Sort(sort.Reverse(sort.IntSlice(st.ComponentSizes)))

	return st
}

// Components returns the node indexes of each connected component, in order of each component's
// lowest node index.  Members are listed in BFS order from that node.
func (tg *TradeGraph) Components() [][]int {
	k := tg.NumNodes()
	seen := make([]bool, k)
	var comps [][]int

	for root := 0; root < k; root++ {
		if seen[root] {
			continue
		}
		seen[root] = true
		members := []int{root}
		for head := 0; head < len(members); head++ {
			for _, n := range tg.adj[members[head]] {
				if !seen[n] {
					seen[n] = true
					members = append(members, n)
				}
			}
		}
		comps = append(comps, members)
	}
	return comps
}

// eccentricity returns the greatest BFS distance from src to any node in its component.
// dist must be all -1 on entry over the component's members and is restored before returning.
func (tg *TradeGraph) eccentricity(src int, members []int, dist []int) int {
	queue := make([]int, 1, len(members))
	queue[0] = src
	dist[src] = 0
	ecc := 0
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, w := range tg.adj[u] {
			if dist[w] < 0 {
				dist[w] = dist[u] + 1
				if dist[w] > ecc {
					ecc = dist[w]
				}
				queue = append(queue, w)
			}
		}
	}
	for _, n := range queue {
		dist[n] = -1
	}
	return ecc
}
