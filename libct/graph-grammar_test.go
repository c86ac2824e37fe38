package libct

import (
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraphExpr(t *testing.T) {
	def, err := ParseGraphExpr("*{1,2,3}; 1-2-3-1")
	require.NoError(t, err)
	assert.Equal(t, []VertexDef{
		{"1", []string{"1", "2", "3"}},
		{"2", []string{"1", "2", "3"}},
		{"3", []string{"1", "2", "3"}},
	}, def.Vertices)
	assert.Equal(t, []EdgeDef{{"1", "2"}, {"2", "3"}, {"3", "1"}}, def.Edges)

	// own palettes, and the default part may come last
	def, err = ParseGraphExpr("a{red,blue} - b - c{blue}; d ; *{red,green}")
	require.NoError(t, err)
	assert.Equal(t, []VertexDef{
		{"a", []string{"red", "blue"}},
		{"b", []string{"red", "green"}},
		{"c", []string{"blue"}},
		{"d", []string{"red", "green"}},
	}, def.Vertices)
	assert.Equal(t, []EdgeDef{{"a", "b"}, {"b", "c"}}, def.Edges)

	// restating a vertex's palette is fine as long as it agrees
	def, err = ParseGraphExpr("a{x,y}-b{x,y}, b{x,y}-c{y}")
	require.NoError(t, err)
	assert.Len(t, def.Vertices, 3)
	assert.Len(t, def.Edges, 2)

	def, err = ParseGraphExpr("")
	require.NoError(t, err)
	assert.Empty(t, def.Vertices)
	X, err := NewGraph(def)
	require.NoError(t, err)
	assert.Equal(t, 0, X.NumVertices())
}

func TestParseGraphExprRejects(t *testing.T) {
	bad := []string{
		"a{x}-b{x}, a{y}",       // conflicting palettes
		"*{x}; *{y}; a",         // two defaults
		"a-",                    // dangling edge
		"a{x,}",                 // empty color
		"a{x} b{y}",             // missing separator
		"*",                     // default without palette
		"a{x}; @",               // bad token
		"a{x}-b{y}; c{z}-d{z};", // trailing separator
	}
	for _, expr := range bad {
		_, err := ParseGraphExpr(expr)
		assert.True(t, errors.Is(err, colortrade.ErrBadGraphExpr), "%q: got %v", expr, err)
	}
}

func TestNewGraphFromExpr(t *testing.T) {
	X, err := NewGraphFromExpr("*{red,blue}; v1-v2-v3")
	require.NoError(t, err)
	assert.Equal(t, 3, X.NumVertices())
	assert.Equal(t, 2, X.NumEdges())

	// syntax is fine but a has no palette
	_, err = NewGraphFromExpr("a-b{x}")
	assert.True(t, errors.Is(err, colortrade.ErrInvalidGraph), "got %v", err)

	_, err = NewGraphFromExpr("*{x}; a-a")
	assert.True(t, errors.Is(err, colortrade.ErrInvalidGraph), "got %v", err)
}
