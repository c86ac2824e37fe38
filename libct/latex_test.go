package libct

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTikZCircle(t *testing.T) {
	X := mustGraph(t, "*{red,blue,1}; v_1-v2-v3")
	C := mustColoring(t, X, map[string]string{"v_1": "red", "v2": "1", "v3": "blue"})

	var buf bytes.Buffer
	require.NoError(t, WriteTikZ(&buf, C, TikZOpts{Caption: "coloring #0"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "% coloring #0\n"))
	assert.Contains(t, out, `\colorlet{ct0}{red}`)
	assert.Contains(t, out, `\colorlet{ct1}{blue}`)
	assert.Contains(t, out, `\definecolor{ct2}{HTML}{4363D8} % 1`)
	assert.Contains(t, out, `\begin{tikzpicture}[scale=1,`)

	// the first vertex sits at the top of the circle
	assert.Contains(t, out, `\node[fill=ct0] (v0) at (0.000, 2.000) {v\_1};`)
	assert.Contains(t, out, `\node[fill=ct2] (v1) at`)
	assert.Contains(t, out, `\draw (v0) -- (v1);`)
	assert.Contains(t, out, `\draw (v1) -- (v2);`)
	assert.True(t, strings.HasSuffix(out, "\\end{tikzpicture}\n"))
}

func TestWriteTikZLayout(t *testing.T) {
	X, err := NewGraph(&GraphDef{
		Vertices: []VertexDef{{"a", []string{"red", "blue"}}, {"b", []string{"red", "blue"}}},
		Edges:    []EdgeDef{{"a", "b"}},
		Layout:   map[string][2]float64{"a": {0, 0}, "b": {3, -1.5}},
	})
	require.NoError(t, err)
	C := mustColoring(t, X, map[string]string{"a": "blue", "b": "red"})

	var buf bytes.Buffer
	require.NoError(t, WriteTikZ(&buf, C, TikZOpts{Scale: 0.5}))
	out := buf.String()
	assert.Contains(t, out, `[scale=0.5,`)
	assert.Contains(t, out, `\node[fill=ct1] (v0) at (0.000, 0.000) {a};`)
	assert.Contains(t, out, `\node[fill=ct0] (v1) at (3.000, -1.500) {b};`)
}

func TestTikzEscape(t *testing.T) {
	assert.Equal(t, `a\_b\{c\}\%\#\&\$`, tikzEscape(`a_b{c}%#&$`))
	assert.Equal(t, `\textbackslash{}x`, tikzEscape(`\x`))
}
