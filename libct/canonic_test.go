package libct

import (
	"testing"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIndependentOfDeclarationOrder(t *testing.T) {
	X1 := mustGraph(t, "b{red,blue}-a{red,blue}-c{red,blue}")
	X2 := mustGraph(t, "c{blue,red}-a{blue,red}-b{blue,red}")

	assign := map[string]string{"a": "red", "b": "blue", "c": "blue"}
	C1 := mustColoring(t, X1, assign)
	C2 := mustColoring(t, X2, assign)

	assert.Equal(t, C1.Key(), C2.Key())
	assert.Equal(t, C1.Key(), Canonize(C1))
	assert.Equal(t, "a=red b=blue c=blue", C1.Key().String())
	assert.NotEqual(t, C1.String(), C2.String(), "String() follows vertex order")
}

func TestKeyEntries(t *testing.T) {
	var buf []byte
	buf = colortrade.AppendKeyEntry(buf, "v1", "red")
	buf = colortrade.AppendKeyEntry(buf, "", "")
	buf = colortrade.AppendKeyEntry(buf, "v=2", "light blue")

	entries, err := colortrade.Key(buf).Entries()
	require.NoError(t, err)
	assert.Equal(t, []colortrade.KeyEntry{
		{Vertex: "v1", Color: "red"},
		{Vertex: "", Color: ""},
		{Vertex: "v=2", Color: "light blue"},
	}, entries)

	_, err = colortrade.Key(buf[:len(buf)-1]).Entries()
	assert.True(t, errors.Is(err, colortrade.ErrBadKey))

	empty, err := colortrade.Key("").Entries()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSortByKeyAndDropDupes(t *testing.T) {
	X := mustGraph(t, "*{3,2,1}; a-b")
	colorings := mustColorings(t, X, colortrade.EnumOpts{})
	require.Len(t, colorings, 6)

	sorted := append([]*Coloring(nil), colorings...)
	SortByKey(sorted)
	for i := 1; i < len(sorted); i++ {
		assert.Less(t, string(sorted[i-1].Key()), string(sorted[i].Key()))
	}
	assert.Equal(t, "a=1 b=2", sorted[0].String())

	doubled := append(append([]*Coloring(nil), colorings...), colorings...)
	set := NewHashSet(HashSetOpts{})
	defer set.Close()
	kept := DropDupes(doubled, set)
	assert.Equal(t, keysOf(colorings), keysOf(kept))
	assert.Equal(t, 6, set.Len())
}

func TestCanonicalizationProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("canonizing twice yields the same key", prop.ForAll(
		func(seed graphSeed) bool {
			X := seedGraph(seed)
			for _, C := range X.Enumerate().Drain() {
				if Canonize(C) != C.Key() || Canonize(C) != Canonize(C) {
					return false
				}
			}
			return true
		},
		genGraphSeed(),
	))

	properties.Property("a coloring rebuilt from its names has the same key", prop.ForAll(
		func(seed graphSeed) bool {
			X := seedGraph(seed)
			Xr, err := NewGraph(reversedDef(X.Def()))
			if err != nil {
				return false
			}
			for _, C := range X.Enumerate().Drain() {
				Cr, err := Xr.ColoringFromNames(C.Names())
				if err != nil || Cr.Key() != C.Key() {
					return false
				}
			}
			return true
		},
		genGraphSeed(),
	))

	properties.TestingRun(t)
}

// reversedDef declares the same graph with vertices and edges in reverse order
func reversedDef(def *GraphDef) *GraphDef {
	out := &GraphDef{}
	for i := len(def.Vertices) - 1; i >= 0; i-- {
		out.Vertices = append(out.Vertices, def.Vertices[i])
	}
	for i := len(def.Edges) - 1; i >= 0; i-- {
		out.Edges = append(out.Edges, EdgeDef{A: def.Edges[i].B, B: def.Edges[i].A})
	}
	return out
}
