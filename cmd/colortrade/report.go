package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/2x3systems/colortrade/libct"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF"))

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

type reportOpts struct {
	ShowAll bool // list every coloring
	Edges   bool // list every trade
}

// writeReport renders the text report of a run
func writeReport(out io.Writer, res *libct.Result, opts reportOpts) {
	tg := res.TradeGraph
	st := &res.Stats

	row := func(b *strings.Builder, label string, val interface{}) {
		fmt.Fprintf(b, "%s %v\n", labelStyle.Render(fmt.Sprintf("%-34s", label)), val)
	}

	b := strings.Builder{}
	row(&b, "Trade rule:", tg.Rule)
	row(&b, "Total colorings (= # of vertices):", st.NodeCount)
	row(&b, "Total swaps (= # of edges):", st.EdgeCount)
	row(&b, "Number of components:", st.ComponentCount)
	row(&b, "Component sizes:", st.ComponentSizes)
	if st.NodeCount > 0 {
		row(&b, "Degree min / max / mean:", fmt.Sprintf("%d / %d / %.3f", st.MinDegree, st.MaxDegree, st.MeanDegree))
		row(&b, "Isolated colorings:", st.IsolatedCount)
	}
	for i, cs := range st.Components {
		if cs.Diameter < 0 {
			break
		}
		row(&b, fmt.Sprintf("Component #%d diameter / radius:", i+1), fmt.Sprintf("%d / %d", cs.Diameter, cs.Radius))
	}

	spectrum := strings.Builder{}
	for _, hi := range st.DegreeHist {
		fmt.Fprintf(&spectrum, "%d : %d\n", hi.Degree, hi.Count)
	}

	fmt.Fprintln(out, titleStyle.Render("Color trade graph"))
	fmt.Fprintln(out, statsBoxStyle.Render(strings.TrimRight(b.String(), "\n")))
	fmt.Fprintln(out, titleStyle.Render("Degree spectrum"))
	fmt.Fprint(out, spectrum.String())

	if opts.ShowAll {
		fmt.Fprintln(out, titleStyle.Render("Colorings"))
		for i := 0; i < tg.NumNodes(); i++ {
			fmt.Fprintf(out, "%s %v\n", dimStyle.Render(fmt.Sprintf("%4d", i)), tg.Node(i))
		}
	}

	if opts.Edges {
		fmt.Fprintln(out, titleStyle.Render("Trades"))
		for _, e := range tg.Edges() {
			trade := ""
			if e.Trade != nil {
				trade = e.Trade.Format(res.Graph)
			}
			fmt.Fprintf(out, "%s %s\n", dimStyle.Render(fmt.Sprintf("%4d -- %-4d", e.A, e.B)), trade)
		}
	}
}
