package libct

import (
	"github.com/2x3systems/colortrade/colortrade"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// GraphExpr is a compact graph declaration, e.g. the triangle "*{1,2,3}; 1-2-3-1" or the path
// "a{red,blue}-b{red,blue}-c{blue}".
//
// Vertices are declared in order of first appearance.  A "*" part gives the palette of every vertex
// that isn't given its own.
type GraphExpr struct {
	Parts []*Part `(@@ (";" @@)*)?`
}

type Part struct {
	Default *Palette  `  "*" @@`
	Runs    []*VtxRun `| @@ ("," @@)*`
}

// VtxRun is a chain of edges: "a-b-c" declares a-b and b-c.
type VtxRun struct {
	Vtxs []*Vtx `@@ ("-" @@)*`
}

type Vtx struct {
	ID      string   `@Name`
	Palette *Palette `@@?`
}

type Palette struct {
	Colors []string `"{" @Name ("," @Name)* "}"`
}

var graphExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[a-zA-Z0-9_][a-zA-Z0-9_.']*`},
	{Name: "Punct", Pattern: `[;,{}*\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseGraphExpr = participle.MustBuild[GraphExpr](
	participle.Lexer(graphExprLexer),
	participle.Elide("Whitespace"),
)

// ParseGraphExpr parses a graph expression into a GraphDef.
//
// Only the syntax is checked here;  NewGraph validates the result.
func ParseGraphExpr(graphExpr string) (*GraphDef, error) {
	Xexpr, err := parseGraphExpr.ParseString("", graphExpr)
	if err != nil {
		return nil, errors.Wrap(colortrade.ErrBadGraphExpr, err.Error())
	}

	var (
		def        GraphDef
		defaultPal []string
		index      = make(map[string]int)
	)

	declare := func(vtx *Vtx) error {
		vi, exists := index[vtx.ID]
		if !exists {
			vi = len(def.Vertices)
			index[vtx.ID] = vi
			def.Vertices = append(def.Vertices, VertexDef{ID: vtx.ID})
		}
		if vtx.Palette != nil {
			vd := &def.Vertices[vi]
			if vd.Palette != nil && !sameNames(vd.Palette, vtx.Palette.Colors) {
				return errors.Wrapf(colortrade.ErrBadGraphExpr, "vertex %q given two different palettes", vtx.ID)
			}
			vd.Palette = vtx.Palette.Colors
		}
		return nil
	}

	for pi, part := range Xexpr.Parts {
		if part.Default != nil {
			if defaultPal != nil {
				return nil, errors.Wrapf(colortrade.ErrBadGraphExpr, "part #%d: default palette given more than once", pi+1)
			}
			defaultPal = part.Default.Colors
			continue
		}
		for _, run := range part.Runs {
			for i, vtx := range run.Vtxs {
				if err := declare(vtx); err != nil {
					return nil, err
				}
				if i > 0 {
					def.Edges = append(def.Edges, EdgeDef{A: run.Vtxs[i-1].ID, B: vtx.ID})
				}
			}
		}
	}

	for i := range def.Vertices {
		if def.Vertices[i].Palette == nil {
			def.Vertices[i].Palette = append([]string(nil), defaultPal...)
		}
	}
	return &def, nil
}

// NewGraphFromExpr parses and validates a graph expression.
func NewGraphFromExpr(graphExpr string) (*Graph, error) {
	def, err := ParseGraphExpr(graphExpr)
	if err != nil {
		return nil, err
	}
	return NewGraph(def)
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
