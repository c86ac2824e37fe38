// Package pyct registers the gpython module "colortrade" so research scripts can drive the engine:
//
//	import colortrade
//	X = colortrade.ParseGraph("*{1,2,3}; 1-2-3-1")
//	res = X.Run(rule="elementary", distances=True)
//	print(res.NumColorings(), res.NumTrades(), res.ComponentSizes())
package pyct

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/2x3systems/colortrade/libct"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pyGraphType          = py.NewType("Graph", "an immutable graph with per-vertex palettes")
	pyColoringStreamType = py.NewType("ColoringStream", "libct.ColoringStream")
	pyResultType         = py.NewType("Result", "colorings, trade graph and stats of a run")
)

type pyGraph struct {
	*libct.Graph
}

func (X pyGraph) Type() *py.Type {
	return pyGraphType
}

func (X pyGraph) M__str__() (py.Object, error) {
	b := strings.Builder{}
	for i, ed := range X.Def().Edges {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ed.A)
		b.WriteByte('-')
		b.WriteString(ed.B)
	}
	return py.String(b.String()), nil
}

func (X pyGraph) M__repr__() (py.Object, error) {
	return X.M__str__()
}

type coloringStream struct {
	*libct.ColoringStream
}

func (stream coloringStream) Type() *py.Type {
	return pyColoringStreamType
}

func wrapColoringStream(stream *libct.ColoringStream) py.Object {
	return py.Object(coloringStream{stream})
}

type pyResult struct {
	*libct.Result
}

func (res pyResult) Type() *py.Type {
	return pyResultType
}

func engineErr(err error) error {
	return py.ExceptionNewf(py.ValueError, "%v", err)
}

// kwString, kwInt and kwBool leave *dst untouched if name is absent.
func kwString(kwargs py.StringDict, name string, dst *string) error {
	if obj, ok := kwargs[name]; ok {
		str, isStr := obj.(py.String)
		if !isStr {
			return py.ExceptionNewf(py.TypeError, "%s: expected str (got %v)", name, obj.Type().Name)
		}
		*dst = string(str)
	}
	return nil
}

func kwInt(kwargs py.StringDict, name string, dst *int) error {
	if obj, ok := kwargs[name]; ok {
		val, err := py.GetInt(obj)
		if err != nil {
			return err
		}
		*dst = int(val)
	}
	return nil
}

func kwBool(kwargs py.StringDict, name string, dst *bool) error {
	if obj, ok := kwargs[name]; ok {
		val, err := py.ObjectIsTrue(obj)
		if err != nil {
			return err
		}
		*dst = val
	}
	return nil
}

// Arg 1 (str): graph expression
func py_ParseGraph(module py.Object, args py.Tuple) (py.Object, error) {
	var expr string
	if err := py.LoadTuple(args, []interface{}{&expr}); err != nil {
		return nil, err
	}
	X, err := libct.NewGraphFromExpr(expr)
	if err != nil {
		return nil, engineErr(err)
	}
	return py.Object(pyGraph{X}), nil
}

// Arg 1 (str): graph file pathname
func py_LoadGraph(module py.Object, args py.Tuple) (py.Object, error) {
	var pathname string
	if err := py.LoadTuple(args, []interface{}{&pathname}); err != nil {
		return nil, err
	}
	X, err := libct.ReadGraphFile(pathname)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		return nil, engineErr(err)
	}
	return py.Object(pyGraph{X}), nil
}

func py_Graph_NumVerts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Object(py.Int(X.NumVertices())), nil
}

func py_Graph_NumEdges(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Object(py.Int(X.NumEdges())), nil
}

func py_Graph_Colorings(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return wrapColoringStream(libct.StreamColorings(X.Graph)), nil
}

// kwargs: rule (str), workers (int), sort (bool), annotate (bool), distances (bool), dedupe (str)
func py_Graph_Run(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	X := self.(pyGraph)

	var (
		ruleName = colortrade.TradeElementary.String()
		dedupe   = "hash"
		workers  = 1
		opts     libct.RunOpts
	)
	for _, err := range []error{
		kwString(kwargs, "rule", &ruleName),
		kwString(kwargs, "dedupe", &dedupe),
		kwInt(kwargs, "workers", &workers),
		kwBool(kwargs, "sort", &opts.Build.SortByKey),
		kwBool(kwargs, "annotate", &opts.Build.Annotate),
		kwBool(kwargs, "distances", &opts.Stats.Distances),
	} {
		if err != nil {
			return nil, err
		}
	}

	rule, err := colortrade.ParseTradeRule(ruleName)
	if err != nil {
		return nil, engineErr(err)
	}
	switch dedupe {
	case "hash":
		opts.Enum.Dedupe = colortrade.DedupeHash
	case "lsm":
		opts.Enum.Dedupe = colortrade.DedupeLSM
	default:
		return nil, py.ExceptionNewf(py.ValueError, "dedupe: expected 'hash' or 'lsm' (got %q)", dedupe)
	}
	opts.Build.Rule = rule
	opts.Enum.Workers = workers
	opts.Build.Workers = workers

	res, err := libct.Run(X.Graph, opts)
	if err != nil {
		return nil, engineErr(err)
	}
	return py.Object(pyResult{res}), nil
}

func py_ColoringStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(coloringStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

func py_ColoringStream_Collect(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(coloringStream)
	colorings := stream.Collect()
	out := make(py.Tuple, len(colorings))
	for i, C := range colorings {
		out[i] = py.String(C.String())
	}
	return out, nil
}

func py_ColoringStream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(coloringStream)
	set := libct.NewHashSet(libct.HashSetOpts{})
	return wrapColoringStream(stream.AddTo(set)), nil
}

// Arg 1 (str, optional): label
// kwargs: key (bool), ordinal (bool), file (str)
func py_ColoringStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(coloringStream)
	opts := colortrade.DefaultPrintOpts

	if len(args) > 0 {
		if err := py.LoadTuple(args, []interface{}{&opts.Label}); err != nil {
			return nil, err
		}
	}
	var pathname string
	for _, err := range []error{
		kwString(kwargs, "label", &opts.Label),
		kwBool(kwargs, "key", &opts.Key),
		kwBool(kwargs, "ordinal", &opts.Ordinal),
		kwString(kwargs, "file", &pathname),
	} {
		if err != nil {
			return nil, err
		}
	}

	if pathname == "" {
		return wrapColoringStream(stream.Print(os.Stdout, opts)), nil
	}

	os.MkdirAll(filepath.Dir(pathname), 0700)
	file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
	}

	// close the file once the print stage has drained
	printed := stream.Print(file, opts)
	next := libct.NewColoringStream()
	go func() {
		for C := range printed.Outlet {
			next.Outlet <- C
		}
		file.Close()
		next.Close()
	}()
	return wrapColoringStream(next), nil
}

func py_Result_NumColorings(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	return py.Int(res.TradeGraph.NumNodes()), nil
}

func py_Result_NumTrades(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	return py.Int(res.TradeGraph.NumEdges()), nil
}

func py_Result_ComponentSizes(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	return intTuple(res.Stats.ComponentSizes), nil
}

func py_Result_Degrees(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	return intTuple(res.Stats.Degrees), nil
}

// Returns ((degree, node count), ...) in ascending degree order
func py_Result_DegreeSpectrum(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	spectrum := make(py.Tuple, len(res.Stats.DegreeHist))
	for i, row := range res.Stats.DegreeHist {
		spectrum[i] = py.Tuple{py.Int(row.Degree), py.Int(row.Count)}
	}
	return spectrum, nil
}

func py_Result_Stats(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	st := &res.Stats
	return py.StringDict{
		"nodes":      py.Int(st.NodeCount),
		"edges":      py.Int(st.EdgeCount),
		"min_degree": py.Int(st.MinDegree),
		"max_degree": py.Int(st.MaxDegree),
		"mean":       py.Float(st.MeanDegree),
		"isolated":   py.Int(st.IsolatedCount),
		"components": py.Int(st.ComponentCount),
	}, nil
}

// Arg 1 (int): node index
func py_Result_Coloring(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	i, err := nodeArg(res, args, 0)
	if err != nil {
		return nil, err
	}
	return py.String(res.TradeGraph.Node(i).String()), nil
}

// Arg 1 (int), Arg 2 (int): node indexes
func py_Result_IsTrade(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	i, err := nodeArg(res, args, 0)
	if err != nil {
		return nil, err
	}
	j, err := nodeArg(res, args, 1)
	if err != nil {
		return nil, err
	}
	tg := res.TradeGraph
	return py.NewBool(tg.HasEdge(tg.Node(i).Key(), tg.Node(j).Key())), nil
}

// Arg 1 (int): node index
func py_Result_TikZ(self py.Object, args py.Tuple) (py.Object, error) {
	res := self.(pyResult)
	i, err := nodeArg(res, args, 0)
	if err != nil {
		return nil, err
	}
	b := strings.Builder{}
	if err = libct.WriteTikZ(&b, res.TradeGraph.Node(i), libct.TikZOpts{}); err != nil {
		return nil, engineErr(err)
	}
	return py.String(b.String()), nil
}

func nodeArg(res pyResult, args py.Tuple, idx int) (int, error) {
	if idx >= len(args) {
		return 0, py.ExceptionNewf(py.TypeError, "missing node index argument #%d", idx+1)
	}
	val, err := py.GetInt(args[idx])
	if err != nil {
		return 0, err
	}
	i := int(val)
	if i < 0 || i >= res.TradeGraph.NumNodes() {
		return 0, py.ExceptionNewf(py.IndexError, "%v: %d", colortrade.ErrNoSuchColoring, i)
	}
	return i, nil
}

func intTuple(vals []int) py.Tuple {
	out := make(py.Tuple, len(vals))
	for i, v := range vals {
		out[i] = py.Int(v)
	}
	return out
}

func init() {

	/////////////////////////////////
	// Graph
	{
		pyGraphType.Dict["NumVerts"] = py.MustNewMethod("NumVerts", py_Graph_NumVerts, 0, "")
		pyGraphType.Dict["NumEdges"] = py.MustNewMethod("NumEdges", py_Graph_NumEdges, 0, "")
		pyGraphType.Dict["Colorings"] = py.MustNewMethod("Colorings", py_Graph_Colorings, 0, "streams every proper coloring of this Graph")
		pyGraphType.Dict["Run"] = py.MustNewMethod("Run", py_Graph_Run, 0, "enumerates colorings, builds the trade graph and computes its stats")
	}

	/////////////////////////////////
	// ColoringStream
	{
		pyColoringStreamType.Dict["Go"] = py.MustNewMethod("Go", py_ColoringStream_Go, 0, "counts the number of colorings output from the ColoringStream")
		pyColoringStreamType.Dict["Collect"] = py.MustNewMethod("Collect", py_ColoringStream_Collect, 0, "")
		pyColoringStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", py_ColoringStream_DropDupes, 0, "")
		pyColoringStreamType.Dict["Print"] = py.MustNewMethod("Print", py_ColoringStream_Print, 0, "prints each coloring from the ColoringStream")
	}

	/////////////////////////////////
	// Result
	{
		pyResultType.Dict["NumColorings"] = py.MustNewMethod("NumColorings", py_Result_NumColorings, 0, "")
		pyResultType.Dict["NumTrades"] = py.MustNewMethod("NumTrades", py_Result_NumTrades, 0, "")
		pyResultType.Dict["ComponentSizes"] = py.MustNewMethod("ComponentSizes", py_Result_ComponentSizes, 0, "")
		pyResultType.Dict["Degrees"] = py.MustNewMethod("Degrees", py_Result_Degrees, 0, "")
		pyResultType.Dict["DegreeSpectrum"] = py.MustNewMethod("DegreeSpectrum", py_Result_DegreeSpectrum, 0, "")
		pyResultType.Dict["Stats"] = py.MustNewMethod("Stats", py_Result_Stats, 0, "")
		pyResultType.Dict["Coloring"] = py.MustNewMethod("Coloring", py_Result_Coloring, 0, "")
		pyResultType.Dict["IsTrade"] = py.MustNewMethod("IsTrade", py_Result_IsTrade, 0, "")
		pyResultType.Dict["TikZ"] = py.MustNewMethod("TikZ", py_Result_TikZ, 0, "returns tikz code drawing the given coloring")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("ParseGraph", py_ParseGraph, 0, "parses a graph expression, e.g. \"*{1,2,3}; 1-2-3-1\""),
			py.MustNewMethod("LoadGraph", py_LoadGraph, 0, "loads a JSON or YAML graph file"),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"RULES": py.Tuple{
				py.String(colortrade.TradeElementary.String()),
				py.String(colortrade.TradeConnected.String()),
				py.String(colortrade.TradeTotal.String()),
			},
			"MAX_WORKERS": py.Int(colortrade.MaxWorkers),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "colortrade",
				Doc:  "list-coloring enumeration and color trade graphs",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
