package libct

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// xcolor names usable as-is
var tikzBaseColors = map[string]bool{
	"red": true, "green": true, "blue": true, "cyan": true, "magenta": true, "yellow": true,
	"black": true, "gray": true, "white": true, "darkgray": true, "lightgray": true, "brown": true,
	"lime": true, "olive": true, "orange": true, "pink": true, "purple": true, "teal": true, "violet": true,
}

// fallback fills for colors xcolor doesn't know, e.g. "1", "2", "3"
var tikzPalette = []string{
	"E6194B", "3CB44B", "4363D8", "FFE119", "F58231", "911EB4",
	"46F0F0", "F032E6", "BCF60C", "FABEBE", "008080", "E6BEFF",
}

// TikZOpts specifies params for WriteTikZ.
type TikZOpts struct {
	Radius  float64 // radius of the circle layout used when the graph has no layout (0 denotes 2)
	Scale   float64 // tikzpicture scale (0 denotes 1)
	Caption string  // optional comment line
}

// WriteTikZ writes a tikzpicture drawing C:  each vertex is filled with its color and the graph's
// layout positions are used if every vertex has one, otherwise vertices are placed on a circle.
func WriteTikZ(out io.Writer, C *Coloring, opts TikZOpts) error {
	X := C.graph
	Nv := X.NumVertices()

	if opts.Radius <= 0 {
		opts.Radius = 2
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	pos := make([][2]float64, Nv)
	useLayout := Nv > 0 && len(X.layout) == Nv
	for v := 0; v < Nv; v++ {
		if useLayout {
			pos[v] = X.layout[VtxID(v)]
		} else {
			theta := math.Pi/2 - 2*math.Pi*float64(v)/float64(Nv)
			pos[v] = [2]float64{opts.Radius * math.Cos(theta), opts.Radius * math.Sin(theta)}
		}
	}

	b := strings.Builder{}
	if opts.Caption != "" {
		fmt.Fprintf(&b, "%% %s\n", opts.Caption)
	}
	fmt.Fprintf(&b, "%% %v\n", C)
	for ci, name := range X.colors {
		if tikzBaseColors[name] {
			fmt.Fprintf(&b, "\\colorlet{ct%d}{%s}\n", ci, name)
		} else {
			fmt.Fprintf(&b, "\\definecolor{ct%d}{HTML}{%s} %% %s\n", ci, tikzPalette[ci%len(tikzPalette)], tikzEscape(name))
		}
	}

	fmt.Fprintf(&b, "\\begin{tikzpicture}[scale=%g, every node/.style={circle, draw, minimum size=6mm, inner sep=1pt}]\n", opts.Scale)
	for v := 0; v < Nv; v++ {
		fmt.Fprintf(&b, "  \\node[fill=ct%d] (v%d) at (%.3f, %.3f) {%s};\n", C.colors[v], v, pos[v][0], pos[v][1], tikzEscape(X.names[v]))
	}
	for _, e := range X.edges {
		fmt.Fprintf(&b, "  \\draw (v%d) -- (v%d);\n", e.A, e.B)
	}
	b.WriteString("\\end{tikzpicture}\n")

	_, err := io.WriteString(out, b.String())
	return err
}

var tikzEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`_`, `\_`,
	`%`, `\%`,
	`#`, `\#`,
	`&`, `\&`,
	`$`, `\$`,
)

func tikzEscape(s string) string {
	return tikzEscaper.Replace(s)
}
