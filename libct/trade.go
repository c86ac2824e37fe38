package libct

import (
	"sort"
	"strings"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
)

// Move is the recoloring of a single vertex within a Trade.
type Move struct {
	Vtx  VtxID
	From ColorID
	To   ColorID
}

// ColorPair is one (from, to) color relabeling of a Trade and how many vertices it applies to.
type ColorPair struct {
	From  ColorID
	To    ColorID
	Count int
}

// Trade describes how one coloring becomes another: the vertices involved and the colors exchanged.
type Trade struct {
	Rule  colortrade.TradeRule
	Moves []Move // in vertex order
}

// Vertices returns the vertices recolored by this trade, in vertex order.
func (T *Trade) Vertices() []VtxID {
	out := make([]VtxID, len(T.Moves))
	for i, mi := range T.Moves {
		out[i] = mi.Vtx
	}
	return out
}

// Size returns the number of vertices recolored by this trade.
func (T *Trade) Size() int {
	return len(T.Moves)
}

// ColorMap returns the color relabeling applied on the trade's vertices, sorted by (From, To).
//
// For a Kempe-style swap of colors a and b this is {a->b, b->a}.
func (T *Trade) ColorMap() []ColorPair {
	var pairs []ColorPair
	for _, mi := range T.Moves {
		found := false
		for i := range pairs {
			if pairs[i].From == mi.From && pairs[i].To == mi.To {
				pairs[i].Count++
				found = true
				break
			}
		}
		if !found {
			pairs = append(pairs, ColorPair{From: mi.From, To: mi.To, Count: 1})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

// Format renders this trade using the names of graph X, e.g. "{a b} red->blue blue->red".
func (T *Trade) Format(X *Graph) string {
	b := strings.Builder{}
	b.WriteByte('{')
	for i, mi := range T.Moves {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(X.names[mi.Vtx])
	}
	b.WriteByte('}')
	for _, pi := range T.ColorMap() {
		b.WriteByte(' ')
		b.WriteString(X.colors[pi.From])
		b.WriteString("->")
		b.WriteString(X.colors[pi.To])
	}
	return b.String()
}

// DetectTrade decides if colorings A and B are related by a single trade under the given rule.
//
// Identical colorings are never adjacent.  If A and B are not defined over the same graph,
// an error wrapping colortrade.ErrIncompatibleColorings is returned.
func DetectTrade(A, B *Coloring, rule colortrade.TradeRule) (*Trade, bool, error) {
	if A == nil || B == nil {
		return nil, false, errors.Wrap(colortrade.ErrIncompatibleColorings, "nil coloring")
	}
	if !A.graph.Equal(B.graph) {
		return nil, false, errors.Wrapf(colortrade.ErrIncompatibleColorings, "%d vs %d vertices", A.graph.NumVertices(), B.graph.NumVertices())
	}

	X := A.graph
	Nv := X.NumVertices()

	var (
		diffBuf [64]VtxID
		inBuf   [64]bool
	)
	diff := diffBuf[:0]
	var inD []bool
	if Nv > len(inBuf) {
		inD = make([]bool, Nv)
	} else {
		inD = inBuf[:Nv]
	}
	for v := 0; v < Nv; v++ {
		if A.colors[v] != B.colors[v] {
			diff = append(diff, VtxID(v))
			inD[v] = true
		}
	}
	if len(diff) == 0 {
		return nil, false, nil
	}

	adjacent := false
	switch rule {
	case colortrade.TradeTotal:
		adjacent = len(diff) == Nv
	case colortrade.TradeConnected:
		adjacent = spans(X, diff, inD, func(u, w VtxID) bool {
			return true
		})
	case colortrade.TradeElementary:
		// A split of D into D1 and D2 can be recolored part by part iff no edge across the split joins
		// u and w with A(u) = B(w) or B(u) = A(w).  Edges leaving D are safe since A and B agree there.
		adjacent = spans(X, diff, inD, func(u, w VtxID) bool {
			return A.colors[u] == B.colors[w] || B.colors[u] == A.colors[w]
		})
	default:
		return nil, false, errors.Wrapf(colortrade.ErrBadTradeRule, "rule %d", rule)
	}

	if !adjacent {
		return nil, false, nil
	}

	T := &Trade{
		Rule:  rule,
		Moves: make([]Move, len(diff)),
	}
	for i, v := range diff {
		T.Moves[i] = Move{
			Vtx:  v,
			From: A.colors[v],
			To:   B.colors[v],
		}
	}
	return T, true, nil
}

// IsTrade is a convenience form of DetectTrade that only reports adjacency.
func IsTrade(A, B *Coloring, rule colortrade.TradeRule) (bool, error) {
	_, adjacent, err := DetectTrade(A, B, rule)
	return adjacent, err
}

// spans reports if every vertex of D is reachable from D[0] over edges of X that stay within D and
// satisfy link.
func spans(X *Graph, D []VtxID, inD []bool, link func(u, w VtxID) bool) bool {
	var (
		seenBuf  [64]bool
		queueBuf [64]VtxID
	)
	var seen []bool
	if len(inD) > len(seenBuf) {
		seen = make([]bool, len(inD))
	} else {
		seen = seenBuf[:len(inD)]
	}

	queue := append(queueBuf[:0], D[0])
	seen[D[0]] = true
	reached := 1

	for len(queue) > 0 {
		u := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, w := range X.nbrs[u] {
			if !inD[w] || seen[w] || !link(u, w) {
				continue
			}
			seen[w] = true
			reached++
			queue = append(queue, w)
		}
	}

	return reached == len(D)
}
