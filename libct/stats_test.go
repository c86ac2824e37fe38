package libct

import (
	"sort"
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsOf(t *testing.T, graphExpr string, rule colortrade.TradeRule) colortrade.Stats {
	t.Helper()
	X := mustGraph(t, graphExpr)
	tg := mustTradeGraph(t, mustColorings(t, X, colortrade.EnumOpts{}), colortrade.BuildOpts{Rule: rule})
	return ComputeStats(tg, colortrade.StatsOpts{Distances: true})
}

func TestStatsEmptyInstance(t *testing.T) {
	st := statsOf(t, "*{x}; a-b", colortrade.TradeElementary)
	assert.Equal(t, colortrade.Stats{}, st)
	assert.Equal(t, colortrade.Stats{}, ComputeStats(nil, colortrade.StatsOpts{}))
}

func TestStatsK2(t *testing.T) {
	st := statsOf(t, "*{red,blue}; v1-v2", colortrade.TradeElementary)

	assert.Equal(t, 2, st.NodeCount)
	assert.Equal(t, 1, st.EdgeCount)
	assert.Equal(t, []int{1, 1}, st.Degrees)
	assert.Equal(t, []colortrade.DegreeCount{{Degree: 1, Count: 2}}, st.DegreeHist)
	assert.Equal(t, 1, st.MinDegree)
	assert.Equal(t, 1, st.MaxDegree)
	assert.Equal(t, 1.0, st.MeanDegree)
	assert.Equal(t, 0, st.IsolatedCount)
	assert.Equal(t, 1, st.ComponentCount)
	assert.Equal(t, []int{2}, st.ComponentSizes)
	assert.Equal(t, []colortrade.ComponentStats{{Size: 2, Edges: 1, Diameter: 1, Radius: 1}}, st.Components)
}

func TestStatsTriangle(t *testing.T) {
	st := statsOf(t, "*{1,2,3}; 1-2-3-1", colortrade.TradeElementary)
	assert.Equal(t, 6, st.NodeCount)
	assert.Equal(t, 15, st.EdgeCount)
	assert.Equal(t, []colortrade.DegreeCount{{Degree: 5, Count: 6}}, st.DegreeHist)
	assert.Equal(t, 5.0, st.MeanDegree)
	assert.Equal(t, []colortrade.ComponentStats{{Size: 6, Edges: 15, Diameter: 1, Radius: 1}}, st.Components)

	// under the total rule the triangle's trade graph is two disjoint triangles
	st = statsOf(t, "*{1,2,3}; 1-2-3-1", colortrade.TradeTotal)
	assert.Equal(t, 2, st.ComponentCount)
	assert.Equal(t, []int{3, 3}, st.ComponentSizes)
}

func TestStatsDistances(t *testing.T) {
	// two independent binary choices: the trade graph is a 4-cycle
	st := statsOf(t, "a{1,2}, b{1,2}", colortrade.TradeElementary)
	assert.Equal(t, 4, st.NodeCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, []colortrade.ComponentStats{{Size: 4, Edges: 4, Diameter: 2, Radius: 2}}, st.Components)

	// three independent choices: a 3-cube
	st = statsOf(t, "a{1,2}, b{1,2}, c{1,2}", colortrade.TradeElementary)
	assert.Equal(t, 8, st.NodeCount)
	assert.Equal(t, 12, st.EdgeCount)
	assert.Equal(t, 3, st.Components[0].Diameter)

	// distances are skipped unless asked for
	X := mustGraph(t, "a{1,2}, b{1,2}")
	tg := mustTradeGraph(t, mustColorings(t, X, colortrade.EnumOpts{}), colortrade.BuildOpts{})
	noDist := ComputeStats(tg, colortrade.StatsOpts{})
	assert.Equal(t, -1, noDist.Components[0].Diameter)
	assert.Equal(t, -1, noDist.Components[0].Radius)
}

func TestStatsIsolated(t *testing.T) {
	// c never changes color, so no two colorings differ at every vertex
	st := statsOf(t, "*{red,blue}; v1-v2, c{x}", colortrade.TradeTotal)
	assert.Equal(t, 2, st.NodeCount)
	assert.Equal(t, 0, st.EdgeCount)
	assert.Equal(t, 2, st.IsolatedCount)
	assert.Equal(t, 0, st.MaxDegree)
	assert.Equal(t, []int{1, 1}, st.ComponentSizes)
	assert.Equal(t, []colortrade.ComponentStats{
		{Size: 1, Edges: 0, Diameter: 0, Radius: 0},
		{Size: 1, Edges: 0, Diameter: 0, Radius: 0},
	}, st.Components)
}

func TestStatsProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("stats are consistent with the trade graph", prop.ForAll(
		func(seed graphSeed) bool {
			colorings := seedGraph(seed).Enumerate().Drain()
			tg, err := BuildTradeGraph(colorings, colortrade.BuildOpts{})
			if err != nil {
				return false
			}
			st := ComputeStats(tg, colortrade.StatsOpts{Distances: true})

			degSum, histSum, sizeSum, compEdges := 0, 0, 0, 0
			for _, d := range st.Degrees {
				degSum += d
			}
			for _, h := range st.DegreeHist {
				histSum += h.Count
			}
			for _, sz := range st.ComponentSizes {
				sizeSum += sz
			}
			for _, cs := range st.Components {
				compEdges += cs.Edges
				if cs.Radius > cs.Diameter || cs.Diameter > 2*cs.Radius {
					return false
				}
			}
			return st.NodeCount == tg.NumNodes() &&
				degSum == 2*st.EdgeCount &&
				histSum == st.NodeCount &&
				sizeSum == st.NodeCount &&
				compEdges == st.EdgeCount &&
				len(st.ComponentSizes) == st.ComponentCount &&
				sort.IsSorted(sort.Reverse(sort.IntSlice(st.ComponentSizes)))
		},
		genGraphSeed(),
	))

	properties.TestingRun(t)
}

func TestComponents(t *testing.T) {
	X := mustGraph(t, "*{1,2,3}; 1-2-3-1")
	tg := mustTradeGraph(t, mustColorings(t, X, colortrade.EnumOpts{}), colortrade.BuildOpts{Rule: colortrade.TradeTotal})

	comps := tg.Components()
	require.Len(t, comps, 2)
	for _, members := range comps {
		assert.Len(t, members, 3)
	}
	assert.Equal(t, 0, comps[0][0])
}
