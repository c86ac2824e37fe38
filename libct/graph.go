package libct

import (
	"sort"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
)

// VtxID is a zero-based index that identifies a vertex in a given Graph, in declaration order.
type VtxID int32

// ColorID is a zero-based index into a Graph's color table.
type ColorID int32

// GraphDef is the construction input of a Graph, as produced by a parser or loader.
type GraphDef struct {
	Vertices []VertexDef
	Edges    []EdgeDef
	Layout   map[string][2]float64 // optional drawing positions
}

// VertexDef declares a vertex and its ordered candidate colors.
type VertexDef struct {
	ID      string
	Palette []string
}

// EdgeDef declares an undirected edge between two vertices.
type EdgeDef struct {
	A, B string
}

// Graph is an immutable simple graph with a per-vertex ordered palette.
type Graph struct {
	names    []string
	index    map[string]VtxID
	colors   []string          // color table
	palettes [][]ColorID       // palettes[v] in declared order
	edges    []Edge            // in declared order, A < B
	edgeSet  map[Edge]struct{} // adjacency test
	nbrs     [][]VtxID         // ascending
	keyOrder []VtxID           // vertices sorted by name
	layout   map[VtxID][2]float64
}

// Edge is an undirected edge, normalized so that A < B.
type Edge struct {
	A, B VtxID
}

func formEdge(a, b VtxID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// NewGraph validates def and returns the immutable Graph it describes.
//
// Any violation of the graph invariants returns an error wrapping colortrade.ErrInvalidGraph.
func NewGraph(def *GraphDef) (*Graph, error) {
	if def == nil {
		return nil, errors.Wrap(colortrade.ErrInvalidGraph, "nil graph def")
	}

	Nv := len(def.Vertices)
	X := &Graph{
		names:    make([]string, 0, Nv),
		index:    make(map[string]VtxID, Nv),
		palettes: make([][]ColorID, 0, Nv),
		edgeSet:  make(map[Edge]struct{}, len(def.Edges)),
		nbrs:     make([][]VtxID, Nv),
	}

	colorIndex := make(map[string]ColorID)
	for i, vd := range def.Vertices {
		if vd.ID == "" {
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "vertex #%d has an empty ID", i+1)
		}
		if _, dupe := X.index[vd.ID]; dupe {
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "vertex %q declared more than once", vd.ID)
		}
		if len(vd.Palette) == 0 {
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "vertex %q has an empty palette", vd.ID)
		}

		palette := make([]ColorID, 0, len(vd.Palette))
		for _, ci := range vd.Palette {
			id, known := colorIndex[ci]
			if !known {
				id = ColorID(len(X.colors))
				colorIndex[ci] = id
				X.colors = append(X.colors, ci)
			}
			for _, cj := range palette {
				if cj == id {
					return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "vertex %q lists color %q more than once", vd.ID, ci)
				}
			}
			palette = append(palette, id)
		}

		X.index[vd.ID] = VtxID(i)
		X.names = append(X.names, vd.ID)
		X.palettes = append(X.palettes, palette)
	}

	for i, ed := range def.Edges {
		a, okA := X.index[ed.A]
		b, okB := X.index[ed.B]
		switch {
		case !okA:
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "edge #%d references unknown vertex %q", i+1, ed.A)
		case !okB:
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "edge #%d references unknown vertex %q", i+1, ed.B)
		case a == b:
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "edge #%d is a self-loop on %q", i+1, ed.A)
		}
		e := formEdge(a, b)
		if _, dupe := X.edgeSet[e]; dupe {
			return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "edge %s-%s declared more than once", ed.A, ed.B)
		}
		X.edgeSet[e] = struct{}{}
		X.edges = append(X.edges, e)
		X.nbrs[a] = append(X.nbrs[a], b)
		X.nbrs[b] = append(X.nbrs[b], a)
	}
	for _, nv := range X.nbrs {
		sort.Slice(nv, func(i, j int) bool { return nv[i] < nv[j] })
	}

	X.keyOrder = make([]VtxID, Nv)
	for i := range X.keyOrder {
		X.keyOrder[i] = VtxID(i)
	}
	sort.Slice(X.keyOrder, func(i, j int) bool {
		return X.names[X.keyOrder[i]] < X.names[X.keyOrder[j]]
	})

	if len(def.Layout) > 0 {
		X.layout = make(map[VtxID][2]float64, len(def.Layout))
		for name, pos := range def.Layout {
			v, ok := X.index[name]
			if !ok {
				return nil, errors.Wrapf(colortrade.ErrInvalidGraph, "layout references unknown vertex %q", name)
			}
			X.layout[v] = pos
		}
	}

	return X, nil
}

// NumVertices returns the number of vertices in this graph.
func (X *Graph) NumVertices() int {
	return len(X.names)
}

// NumEdges returns the number of edges in this graph.
func (X *Graph) NumEdges() int {
	return len(X.edges)
}

// VertexName returns the declared ID of vertex v.
func (X *Graph) VertexName(v VtxID) string {
	return X.names[v]
}

// Lookup returns the VtxID of the vertex with the given name.
func (X *Graph) Lookup(name string) (VtxID, bool) {
	v, ok := X.index[name]
	return v, ok
}

// Palette returns the ordered candidate colors of vertex v.  The caller must not modify it.
func (X *Graph) Palette(v VtxID) []ColorID {
	return X.palettes[v]
}

// ColorName returns the declared name of a color.
func (X *Graph) ColorName(c ColorID) string {
	return X.colors[c]
}

// NumColors returns the number of distinct colors across all palettes.
func (X *Graph) NumColors() int {
	return len(X.colors)
}

// Edges returns this graph's edges in declared order.  The caller must not modify it.
func (X *Graph) Edges() []Edge {
	return X.edges
}

// Neighbors returns the neighbors of v in ascending order.  The caller must not modify it.
func (X *Graph) Neighbors(v VtxID) []VtxID {
	return X.nbrs[v]
}

// Adjacent reports if u and v share an edge.
func (X *Graph) Adjacent(u, v VtxID) bool {
	_, exists := X.edgeSet[formEdge(u, v)]
	return exists
}

// KeyOrder returns the vertices in canonical (ascending name) order.  The caller must not modify it.
func (X *Graph) KeyOrder() []VtxID {
	return X.keyOrder
}

// Layout returns the drawing position of v, if one was given.
func (X *Graph) Layout(v VtxID) (pos [2]float64, ok bool) {
	pos, ok = X.layout[v]
	return
}

// Equal reports if X and other declare the same vertices and palettes in the same order and the same edge set.
//
// Equal graphs intern colors identically, so their ColorIDs are interchangeable.
func (X *Graph) Equal(other *Graph) bool {
	if X == other {
		return true
	}
	if X == nil || other == nil || len(X.names) != len(other.names) || len(X.edges) != len(other.edges) {
		return false
	}
	for v, name := range X.names {
		if other.names[v] != name || len(X.palettes[v]) != len(other.palettes[v]) {
			return false
		}
		for i, c := range X.palettes[v] {
			if other.colors[other.palettes[v][i]] != X.colors[c] {
				return false
			}
		}
	}
	for _, e := range X.edges {
		if !other.Adjacent(e.A, e.B) {
			return false
		}
	}
	return true
}

// Def exports this graph back into a GraphDef.
func (X *Graph) Def() *GraphDef {
	def := &GraphDef{
		Vertices: make([]VertexDef, len(X.names)),
		Edges:    make([]EdgeDef, len(X.edges)),
	}
	for v, name := range X.names {
		palette := make([]string, len(X.palettes[v]))
		for i, c := range X.palettes[v] {
			palette[i] = X.colors[c]
		}
		def.Vertices[v] = VertexDef{ID: name, Palette: palette}
	}
	for i, e := range X.edges {
		def.Edges[i] = EdgeDef{A: X.names[e.A], B: X.names[e.B]}
	}
	if len(X.layout) > 0 {
		def.Layout = make(map[string][2]float64, len(X.layout))
		for v, pos := range X.layout {
			def.Layout[X.names[v]] = pos
		}
	}
	return def
}
