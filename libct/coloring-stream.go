package libct

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/colortrade/colortrade"
)

// ColoringStream is a stage of a coloring pipeline.  Each stage reads from its upstream in its own
// goroutine and closes its Outlet when the upstream is exhausted.
type ColoringStream struct {
	Outlet chan *Coloring
}

func NewColoringStream() *ColoringStream {
	return &ColoringStream{
		Outlet: make(chan *Coloring, 1),
	}
}

// StreamColorings sends every proper coloring of X, in enumeration order.
func StreamColorings(X *Graph) *ColoringStream {
	next := NewColoringStream()

	go func() {
		cur := X.Enumerate()
		for C, ok := cur.Next(); ok; C, ok = cur.Next() {
			next.Outlet <- C
		}
		next.Close()
	}()

	return next
}

// StreamSlice sends the given colorings in order.
func StreamSlice(colorings []*Coloring) *ColoringStream {
	next := NewColoringStream()

	go func() {
		for _, C := range colorings {
			next.Outlet <- C
		}
		next.Close()
	}()

	return next
}

func (stream *ColoringStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// Collect blocks until the stream is exhausted and returns everything it sent.
func (stream *ColoringStream) Collect() []*Coloring {
	var out []*Coloring
	for C := range stream.Outlet {
		out = append(out, C)
	}
	return out
}

// PullAll drains the stream and returns how many colorings it sent.
func (stream *ColoringStream) PullAll() int {
	count := 0
	for range stream.Outlet {
		count++
	}
	return count
}

// AddTo passes on only the colorings whose key is newly added to target.
func (stream *ColoringStream) AddTo(target colortrade.CanonicSet) *ColoringStream {
	next := NewColoringStream()

	go func() {
		for C := range stream.Outlet {
			if target.TryAdd(C.key) {
				next.Outlet <- C
			}
		}
		next.Close()
	}()

	return next
}

// Select passes on only the colorings for which sel returns true.
func (stream *ColoringStream) Select(sel func(C *Coloring) bool) *ColoringStream {
	next := NewColoringStream()

	go func() {
		for C := range stream.Outlet {
			if sel(C) {
				next.Outlet <- C
			}
		}
		next.Close()
	}()

	return next
}

// Print writes one row per coloring to out and passes each coloring on.
//
// Rows are "<label>,<ordinal>,<coloring>", where label and ordinal (zero-padded) are each optional.
func (stream *ColoringStream) Print(out io.Writer, opts colortrade.PrintOpts) *ColoringStream {
	next := NewColoringStream()

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for C := range stream.Outlet {
			count++
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}
			if opts.Ordinal {
				fmt.Fprintf(&buf, "%06d,", count)
			}
			if opts.Key {
				buf.WriteString(C.key.String())
			} else {
				buf.WriteString(C.String())
			}
			buf.WriteByte('\n')
			io.WriteString(out, buf.String())
			buf.Reset()
			next.Outlet <- C
		}
		next.Close()
	}()

	return next
}
