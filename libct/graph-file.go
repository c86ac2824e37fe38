package libct

import (
	"io"
	"os"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"
)

// ReadGraphFile loads and validates a graph file:
//
//	{
//	  "vertices": { "v1": ["red", "blue"], "v2": ["red", "blue"] },
//	  "edges":    [ ["v1", "v2"] ],
//	  "layout":   { "v1": [0, 0], "v2": [1, 0] }
//	}
//
// JSON or YAML is accepted.  Vertices are declared in the order they appear in the file.
func ReadGraphFile(pathname string) (*Graph, error) {
	file, err := os.Open(pathname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	def, err := ReadGraphDef(file)
	if err != nil {
		return nil, errors.Wrap(err, pathname)
	}
	return NewGraph(def)
}

// ReadGraphDef decodes a graph file into a GraphDef without validating it.
//
// A malformed document returns an error wrapping colortrade.ErrBadGraphFile.
func ReadGraphDef(r io.Reader) (*GraphDef, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(colortrade.ErrBadGraphFile, "empty document")
		}
		return nil, errors.Wrap(colortrade.ErrBadGraphFile, err.Error())
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, badGraphFile(root, "expected a mapping at top level")
	}

	def := &GraphDef{}
	haveVertices, haveEdges := false, false

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "vertices":
			haveVertices = true
			if val.Kind != yaml.MappingNode {
				return nil, badGraphFile(val, "\"vertices\" must map each vertex to its colors")
			}
			// walk the mapping node directly so declaration order survives
			for j := 0; j+1 < len(val.Content); j += 2 {
				vtx, colors := val.Content[j], val.Content[j+1]
				vd := VertexDef{ID: vtx.Value}
				if err := colors.Decode(&vd.Palette); err != nil {
					return nil, badGraphFile(colors, "colors of vertex %q: %v", vtx.Value, err)
				}
				def.Vertices = append(def.Vertices, vd)
			}
		case "edges":
			haveEdges = true
			var edges [][]string
			if err := val.Decode(&edges); err != nil {
				return nil, badGraphFile(val, "\"edges\": %v", err)
			}
			for ei, edge := range edges {
				if len(edge) != 2 {
					return nil, badGraphFile(val, "edge #%d must have 2 items, has %d", ei+1, len(edge))
				}
				def.Edges = append(def.Edges, EdgeDef{A: edge[0], B: edge[1]})
			}
		case "layout":
			var layout map[string][]float64
			if err := val.Decode(&layout); err != nil {
				return nil, badGraphFile(val, "\"layout\": %v", err)
			}
			def.Layout = make(map[string][2]float64, len(layout))
			for vtx, pos := range layout {
				if len(pos) != 2 {
					return nil, badGraphFile(val, "layout of vertex %q must have 2 coordinates", vtx)
				}
				def.Layout[vtx] = [2]float64{pos[0], pos[1]}
			}
		default:
			klog.Warningf("graph file: ignoring unknown key %q (line %d)", key.Value, key.Line)
		}
	}

	if !haveVertices {
		return nil, errors.Wrap(colortrade.ErrBadGraphFile, "missing \"vertices\"")
	}
	if !haveEdges {
		return nil, errors.Wrap(colortrade.ErrBadGraphFile, "missing \"edges\"")
	}
	return def, nil
}

func badGraphFile(at *yaml.Node, format string, args ...interface{}) error {
	return errors.Wrapf(colortrade.ErrBadGraphFile, "line %d: "+format, append([]interface{}{at.Line}, args...)...)
}
