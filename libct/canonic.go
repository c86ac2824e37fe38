package libct

import (
	"sort"

	"github.com/2x3systems/colortrade/colortrade"
)

// AppendKey appends the canonical encoding of C to out (see colortrade.Key).
//
// The encoding walks vertices in name order and only depends on the vertex -> color assignment.
func (C *Coloring) AppendKey(out []byte) []byte {
	X := C.graph
	for _, v := range X.keyOrder {
		out = colortrade.AppendKeyEntry(out, X.names[v], X.colors[C.colors[v]])
	}
	return out
}

// Canonize returns the canonical key of C.
func Canonize(C *Coloring) colortrade.Key {
	return colortrade.Key(C.AppendKey(nil))
}

// SortByKey sorts the given colorings into ascending canonical key order.
func SortByKey(colorings []*Coloring) {
	sort.SliceStable(colorings, func(i, j int) bool {
		return colorings[i].key < colorings[j].key
	})
}

// DropDupes returns the colorings whose key was newly added to set, preserving order.
func DropDupes(colorings []*Coloring, set colortrade.CanonicSet) []*Coloring {
	out := colorings[:0:0]
	for _, C := range colorings {
		if set.TryAdd(C.key) {
			out = append(out, C)
		}
	}
	return out
}
