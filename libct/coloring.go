package libct

import (
	"strings"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
)

// Coloring is an immutable assignment of one palette color to every vertex of a Graph.
//
// Colorings are shared across many trade graph edges, so nothing ever modifies one after it is formed.
type Coloring struct {
	graph  *Graph
	colors []ColorID // by VtxID
	key    colortrade.Key
}

// newColoring forms a Coloring from a copy of assign.
func newColoring(X *Graph, assign []ColorID) *Coloring {
	C := &Coloring{
		graph:  X,
		colors: append([]ColorID(nil), assign...),
	}
	C.key = colortrade.Key(C.AppendKey(nil))
	return C
}

// ColoringFromNames forms a Coloring from a vertex name -> color name map.
//
// Every vertex must be assigned a color from its palette and the result must be proper.
func (X *Graph) ColoringFromNames(assign map[string]string) (*Coloring, error) {
	if len(assign) != X.NumVertices() {
		return nil, errors.Wrapf(colortrade.ErrInvalidColoring, "%d vertices assigned, graph has %d", len(assign), X.NumVertices())
	}
	colors := make([]ColorID, X.NumVertices())
	for name, colorName := range assign {
		v, ok := X.index[name]
		if !ok {
			return nil, errors.Wrapf(colortrade.ErrInvalidColoring, "unknown vertex %q", name)
		}
		found := false
		for _, c := range X.palettes[v] {
			if X.colors[c] == colorName {
				colors[v] = c
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(colortrade.ErrInvalidColoring, "color %q is not in the palette of %q", colorName, name)
		}
	}
	C := newColoring(X, colors)
	if !C.IsProper() {
		return nil, errors.Wrap(colortrade.ErrInvalidColoring, "coloring is not proper")
	}
	return C, nil
}

// Graph returns the graph this coloring is defined over.
func (C *Coloring) Graph() *Graph {
	return C.graph
}

// Color returns the color assigned to v.
func (C *Coloring) Color(v VtxID) ColorID {
	return C.colors[v]
}

// ColorName returns the name of the color assigned to v.
func (C *Coloring) ColorName(v VtxID) string {
	return C.graph.colors[C.colors[v]]
}

// Key returns the canonical key of this coloring.
func (C *Coloring) Key() colortrade.Key {
	return C.key
}

// IsProper reports if no edge joins two vertices of the same color.
func (C *Coloring) IsProper() bool {
	for _, e := range C.graph.edges {
		if C.colors[e.A] == C.colors[e.B] {
			return false
		}
	}
	return true
}

// Names exports this coloring as a vertex name -> color name map.
func (C *Coloring) Names() map[string]string {
	out := make(map[string]string, len(C.colors))
	for v, c := range C.colors {
		out[C.graph.names[v]] = C.graph.colors[c]
	}
	return out
}

// String renders this coloring in vertex order, e.g. "v1=red v2=blue".
func (C *Coloring) String() string {
	b := strings.Builder{}
	for v, c := range C.colors {
		if v > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(C.graph.names[v])
		b.WriteByte('=')
		b.WriteString(C.graph.colors[c])
	}
	return b.String()
}
