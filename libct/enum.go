package libct

import (
	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"
)

// Cursor is a lazy, explicit-stack backtracking walk over every proper coloring of a Graph.
//
// Vertices are assigned in declaration order.  At position i, each palette color of v_i is tried in
// order and only checked against the neighbors already assigned (those with index < i), so every edge
// is checked exactly once per candidate, at its later endpoint.
type Cursor struct {
	X      *Graph
	lower  [][]VtxID // lower[v] are the neighbors of v that precede v
	assign []ColorID // partial assignment, valid at positions < pos
	next   []int     // next[i] is the next palette index to try at position i
	pos    int       // position being assigned
	floor  int       // positions below floor are fixed for this walk
	done   bool
}

// Enumerate returns a fresh Cursor over all proper colorings of X.
//
// Each call starts a new search, so a Graph can be enumerated any number of times.
func (X *Graph) Enumerate() *Cursor {
	return X.newCursor()
}

func (X *Graph) newCursor() *Cursor {
	Nv := X.NumVertices()
	cur := &Cursor{
		X:      X,
		lower:  make([][]VtxID, Nv),
		assign: make([]ColorID, Nv),
		next:   make([]int, Nv),
	}
	for v := range cur.lower {
		for _, u := range X.nbrs[v] {
			if u < VtxID(v) {
				cur.lower[v] = append(cur.lower[v], u)
			}
		}
	}
	return cur
}

// enumerateBranch returns a Cursor restricted to colorings where the first vertex is assigned the
// color at the given index of its palette.
func (X *Graph) enumerateBranch(paletteIdx int) *Cursor {
	cur := X.newCursor()
	cur.assign[0] = X.palettes[0][paletteIdx]
	cur.next[0] = len(X.palettes[0])
	cur.pos = 1
	cur.floor = 1
	if cur.pos < len(cur.next) {
		cur.next[cur.pos] = 0
	}
	return cur
}

func (cur *Cursor) consistent(v VtxID, c ColorID) bool {
	for _, u := range cur.lower[v] {
		if cur.assign[u] == c {
			return false
		}
	}
	return true
}

// Next returns the next proper coloring, or false once all colorings have been returned.
func (cur *Cursor) Next() (*Coloring, bool) {
	Nv := len(cur.assign)

	for !cur.done {
		if cur.pos < cur.floor {
			cur.done = true
			break
		}

		// complete assignment: emit, then resume at the last position
		if cur.pos == Nv {
			C := newColoring(cur.X, cur.assign)
			cur.pos--
			return C, true
		}

		v := VtxID(cur.pos)
		palette := cur.X.palettes[v]
		placed := false
		for cur.next[v] < len(palette) {
			c := palette[cur.next[v]]
			cur.next[v]++
			if cur.consistent(v, c) {
				cur.assign[v] = c
				placed = true
				break
			}
		}

		if placed {
			cur.pos++
			if cur.pos < Nv {
				cur.next[cur.pos] = 0
			}
		} else {
			cur.pos-- // exhausted: backtrack
		}
	}

	return nil, false
}

// Drain returns all remaining colorings of this cursor.
func (cur *Cursor) Drain() []*Coloring {
	var out []*Coloring
	for C, ok := cur.Next(); ok; C, ok = cur.Next() {
		out = append(out, C)
	}
	return out
}

// EnumColorings returns every distinct proper coloring of X in discovery order.
//
// When opts.Workers > 1, the search is forked across the palette choices of the first vertex and the
// branches are concatenated in palette order, so the result is identical to the sequential search.
func EnumColorings(X *Graph, opts colortrade.EnumOpts) ([]*Coloring, error) {
	out, _, err := enumColorings(X, opts)
	return out, err
}

// enumColorings is EnumColorings that also returns the number of colorings the cursors emitted
// before the duplicate collector saw them.
func enumColorings(X *Graph, opts colortrade.EnumOpts) ([]*Coloring, int, error) {
	set := NewCanonicSet(opts.Dedupe)
	defer set.Close()

	accept := func(C *Coloring, out []*Coloring) ([]*Coloring, error) {
		if !C.IsProper() {
			return out, errors.Errorf("enumerator produced an improper coloring: %v", C)
		}
		if set.TryAdd(C.key) {
			out = append(out, C)
		}
		return out, nil
	}

	workers := clampWorkers(opts.Workers)
	if workers <= 1 || X.NumVertices() == 0 {
		var (
			out     []*Coloring
			emitted int
			err     error
		)
		cur := X.Enumerate()
		for C, ok := cur.Next(); ok; C, ok = cur.Next() {
			emitted++
			if out, err = accept(C, out); err != nil {
				return nil, emitted, err
			}
		}
		return out, emitted, nil
	}

	Nb := len(X.palettes[0])
	branches := make([][]*Coloring, Nb)
	emitted := make([]int, Nb)

	var grp errgroup.Group
	grp.SetLimit(workers)
	for bi := 0; bi < Nb; bi++ {
		bi := bi
		grp.Go(func() error {
			cur := X.enumerateBranch(bi)
			var err error
			for C, ok := cur.Next(); ok; C, ok = cur.Next() {
				emitted[bi]++
				if branches[bi], err = accept(C, branches[bi]); err != nil {
					return err
				}
			}
			klog.V(3).Infof("enum branch %d/%d: %d colorings", bi+1, Nb, len(branches[bi]))
			return nil
		})
	}

	err := grp.Wait()
	total, totalEmitted := 0, 0
	for bi := range branches {
		total += len(branches[bi])
		totalEmitted += emitted[bi]
	}
	if err != nil {
		return nil, totalEmitted, err
	}

	out := make([]*Coloring, 0, total)
	for _, bi := range branches {
		out = append(out, bi...)
	}
	return out, totalEmitted, nil
}

func clampWorkers(workers int) int {
	if workers < 1 {
		return 1
	}
	if workers > colortrade.MaxWorkers {
		return colortrade.MaxWorkers
	}
	return workers
}
