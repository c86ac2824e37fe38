package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/2x3systems/colortrade/config"
	"github.com/2x3systems/colortrade/libct"
	"github.com/2x3systems/colortrade/libct/metrics"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

const usage = `usage: colortrade [flags] <graph-file>
       colortrade [flags] -expr "<graph expr>"
       colortrade -script <file.py>

Enumerates every proper list-coloring of a graph, builds the color trade graph over them and
reports its statistics.
`

type cliFlags struct {
	configPath string
	expr       string
	script     string
	outPath    string
	latex      int

	rule       string
	workers    int
	dedupe     string
	sortByKey  bool
	annotate   bool
	distances  bool
	format     string
	showAll    bool
	edges      bool
	metricsOut string
}

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cf cliFlags
	flag.StringVar(&cf.configPath, "config", "", "YAML run configuration")
	flag.StringVar(&cf.expr, "expr", "", "graph expression, e.g. \"*{1,2,3}; 1-2-3-1\" (instead of a graph file)")
	flag.StringVar(&cf.script, "script", "", "run a gpython script with the colortrade module")
	flag.StringVar(&cf.outPath, "o", "", "output pathname (default stdout)")
	flag.IntVar(&cf.latex, "latex", -1, "print tikz code drawing the numbered coloring")
	flag.StringVar(&cf.rule, "rule", "", "trade rule: elementary, connected or total")
	flag.IntVar(&cf.workers, "workers", 0, "goroutines used for enumeration and pair detection")
	flag.StringVar(&cf.dedupe, "dedupe", "", "dedupe set: hash or lsm")
	flag.BoolVar(&cf.sortByKey, "sort", false, "list colorings in canonical key order")
	flag.BoolVar(&cf.annotate, "annotate", false, "describe each trade")
	flag.BoolVar(&cf.distances, "distances", false, "compute diameter and radius of each component")
	flag.StringVar(&cf.format, "format", "", "output format: text, json or pb")
	flag.BoolVar(&cf.showAll, "showall", false, "list every coloring")
	flag.BoolVar(&cf.edges, "edges", false, "list every trade")
	flag.StringVar(&cf.metricsOut, "metrics-out", "", "write prometheus metrics of the run to this file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	err := run(&cf)
	if err != nil {
		klog.Errorf("colortrade: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func run(cf *cliFlags) error {
	if cf.script != "" {
		return runScript(cf.script)
	}

	cfg := config.Default()
	if cf.configPath != "" {
		var err error
		if cfg, err = config.Load(cf.configPath); err != nil {
			return err
		}
	}
	if err := applyFlags(cfg, cf); err != nil {
		return err
	}

	X, err := loadGraph(cf)
	if err != nil {
		return err
	}

	var reg *metrics.Registry
	if cfg.Output.MetricsOut != "" {
		reg = metrics.NewRegistry()
	}
	opts, err := cfg.RunOpts(reg)
	if err != nil {
		return err
	}

	res, err := libct.Run(X, opts)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cf.outPath != "" {
		file, err := os.Create(cf.outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	bufOut := bufio.NewWriter(out)
	defer bufOut.Flush()

	switch cfg.Output.Format {
	case "json":
		err = res.WriteJSON(bufOut)
	case "pb":
		err = res.WriteRecord(bufOut)
	default:
		writeReport(bufOut, res, reportOpts{
			ShowAll: cfg.Output.ShowAll,
			Edges:   cfg.Output.Edges,
		})
	}
	if err != nil {
		return err
	}

	if cf.latex >= 0 {
		C, err := res.Coloring(cf.latex)
		if err != nil {
			return err
		}
		err = libct.WriteTikZ(bufOut, C, libct.TikZOpts{
			Caption: fmt.Sprintf("coloring %d of %d", cf.latex, res.TradeGraph.NumNodes()),
		})
		if err != nil {
			return err
		}
	}

	if reg != nil {
		if err = reg.WriteTextfile(cfg.Output.MetricsOut); err != nil {
			return errors.Wrap(err, "metrics-out")
		}
	}
	return nil
}

// applyFlags overrides cfg with every flag given on the command line
func applyFlags(cfg *config.Config, cf *cliFlags) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rule":
			cfg.Rule = cf.rule
		case "workers":
			cfg.Enum.Workers = cf.workers
			cfg.Build.Workers = cf.workers
		case "dedupe":
			cfg.Enum.Dedupe = cf.dedupe
		case "sort":
			cfg.Build.SortByKey = cf.sortByKey
		case "annotate":
			cfg.Build.Annotate = cf.annotate
		case "distances":
			cfg.Stats.Distances = cf.distances
		case "format":
			cfg.Output.Format = cf.format
		case "showall":
			cfg.Output.ShowAll = cf.showAll
		case "edges":
			cfg.Output.Edges = cf.edges
		case "metrics-out":
			cfg.Output.MetricsOut = cf.metricsOut
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// tikz shares the output writer, which only the text report can carry
	if cf.latex >= 0 && cfg.Output.Format != "text" {
		return errors.Wrapf(colortrade.ErrBadConfig, "-latex cannot be combined with format %q", cfg.Output.Format)
	}
	return nil
}

func loadGraph(cf *cliFlags) (*libct.Graph, error) {
	switch {
	case cf.expr != "" && flag.NArg() > 0:
		return nil, errors.New("give either -expr or a graph file, not both")
	case cf.expr != "":
		return libct.NewGraphFromExpr(cf.expr)
	case flag.NArg() == 1:
		return libct.ReadGraphFile(flag.Arg(0))
	default:
		flag.Usage()
		return nil, errors.New("expected exactly one graph file")
	}
}
