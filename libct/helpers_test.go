package libct

import (
	"fmt"
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, graphExpr string) *Graph {
	t.Helper()
	X, err := NewGraphFromExpr(graphExpr)
	require.NoError(t, err, graphExpr)
	return X
}

func mustColoring(t *testing.T, X *Graph, assign map[string]string) *Coloring {
	t.Helper()
	C, err := X.ColoringFromNames(assign)
	require.NoError(t, err)
	return C
}

func mustColorings(t *testing.T, X *Graph, opts colortrade.EnumOpts) []*Coloring {
	t.Helper()
	colorings, err := EnumColorings(X, opts)
	require.NoError(t, err)
	return colorings
}

// graphSeed deterministically describes a small random graph (see seedGraph)
type graphSeed struct {
	Nv       int
	Nc       int
	EdgeBits uint32
	PalBits  uint32
}

// seedGraph forms a graph on Nv vertices where edge #p (in row-major upper triangle order) is present
// if bit p of EdgeBits is set, and vertex v may use color c if bit (v*Nc + c) of PalBits is set.
// Every vertex can always use color v % Nc, so no palette is empty.
func seedGraph(seed graphSeed) *Graph {
	def := &GraphDef{}
	for v := 0; v < seed.Nv; v++ {
		vd := VertexDef{ID: fmt.Sprintf("v%d", v)}
		for c := 0; c < seed.Nc; c++ {
			if c == v%seed.Nc || seed.PalBits&(1<<uint((v*seed.Nc+c)%32)) != 0 {
				vd.Palette = append(vd.Palette, fmt.Sprintf("c%d", c))
			}
		}
		def.Vertices = append(def.Vertices, vd)
	}
	p := 0
	for i := 0; i < seed.Nv; i++ {
		for j := i + 1; j < seed.Nv; j++ {
			if seed.EdgeBits&(1<<uint(p%32)) != 0 {
				def.Edges = append(def.Edges, EdgeDef{A: def.Vertices[i].ID, B: def.Vertices[j].ID})
			}
			p++
		}
	}
	X, err := NewGraph(def)
	if err != nil {
		panic(err)
	}
	return X
}

func genGraphSeed() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 6),
		gen.IntRange(1, 4),
		gen.UInt32(),
		gen.UInt32(),
	).Map(func(vals []interface{}) graphSeed {
		return graphSeed{
			Nv:       vals[0].(int),
			Nc:       vals[1].(int),
			EdgeBits: vals[2].(uint32),
			PalBits:  vals[3].(uint32),
		}
	})
}

// bruteForceKeys returns the keys of every proper coloring in the Cartesian product of X's palettes
func bruteForceKeys(X *Graph) map[colortrade.Key]bool {
	out := make(map[colortrade.Key]bool)
	Nv := X.NumVertices()
	assign := make([]ColorID, Nv)

	var walk func(v int)
	walk = func(v int) {
		if v == Nv {
			C := newColoring(X, assign)
			if C.IsProper() {
				out[C.key] = true
			}
			return
		}
		for _, c := range X.Palette(VtxID(v)) {
			assign[v] = c
			walk(v + 1)
		}
	}
	walk(0)
	return out
}

// mix returns A with the vertices in S recolored as in B
func mix(A, B *Coloring, S []VtxID) *Coloring {
	colors := append([]ColorID(nil), A.colors...)
	for _, v := range S {
		colors[v] = B.colors[v]
	}
	return newColoring(A.graph, colors)
}

// splitsIndependently reports if the difference set of A and B has a split into nonempty D1 and D2 so
// that recoloring either part alone stays proper.
func splitsIndependently(A, B *Coloring) bool {
	var D []VtxID
	for v := range A.colors {
		if A.colors[v] != B.colors[v] {
			D = append(D, VtxID(v))
		}
	}
	n := uint(len(D))
	for mask := uint64(1); mask < (1<<n)-1; mask++ {
		var D1, D2 []VtxID
		for i := uint(0); i < n; i++ {
			if mask&(1<<i) != 0 {
				D1 = append(D1, D[i])
			} else {
				D2 = append(D2, D[i])
			}
		}
		if mix(A, B, D1).IsProper() && mix(A, B, D2).IsProper() {
			return true
		}
	}
	return false
}
