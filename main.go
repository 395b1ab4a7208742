// termviz renders charts, tables, trees, and toasts as styled text.
//
// It is a thin host around the rendering packages: it switches the console
// to UTF-8 where needed, then either renders a declarative chart file or a
// built-in showcase of every widget.
//
// Usage:
//
//	termviz [flags]
//
// Flags:
//
//	-file string   Render charts from a YAML chart file
//	-style string  Glyph style: ascii|unicode|rounded|double|heavy (default unicode)
//	-theme string  Color theme name (default "default")
//	-no-color      Disable ANSI color output
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/chartfile"
	"gitlab.com/tinyland/lab/termviz/pkg/charts"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
	"gitlab.com/tinyland/lab/termviz/pkg/table"
	"gitlab.com/tinyland/lab/termviz/pkg/terminal"
	"gitlab.com/tinyland/lab/termviz/pkg/theme"
	"gitlab.com/tinyland/lab/termviz/pkg/toast"
	"gitlab.com/tinyland/lab/termviz/pkg/tree"
)

func main() {
	filePath := flag.String("file", "", "render charts from a YAML chart file")
	styleName := flag.String("style", "unicode", "glyph style: ascii|unicode|rounded|double|heavy")
	themeName := flag.String("theme", "default", "color theme name")
	noColor := flag.Bool("no-color", false, "disable ANSI color output")
	flag.Parse()

	if err := terminal.Setup(); err != nil {
		slog.Warn("console UTF-8 setup failed", "error", err)
	}

	style := glyphs.ParseStyle(*styleName)
	th := theme.Get(*themeName)
	color := !*noColor && terminal.ColorEnabled()

	if *filePath != "" {
		f, err := chartfile.Load(*filePath)
		if err != nil {
			slog.Error("load chart file", "error", err)
			os.Exit(1)
		}
		if err := f.RenderTo(os.Stdout); err != nil {
			slog.Error("render chart file", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := showcase(style, th, color); err != nil {
		slog.Error("render showcase", "error", err)
		os.Exit(1)
	}
}

// showcase renders one example of every widget to stdout.
func showcase(style glyphs.Style, th theme.Theme, color bool) error {
	out := os.Stdout

	lc := charts.NewLineChart(60, 12).
		Title("request latency").
		AxisLabels("time", "ms").
		Style(style).
		Grid(true).
		Markers(true)
	if color {
		lc.Color(ansitext.Fg(th.ChartLine))
	}
	lc.AddValues([]float64{12, 19, 14, 31, 28, 40, 33, 52, 47, 61, 55, 72})
	if err := lc.RenderTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	bc := charts.NewBarChart(40).
		Title("requests by region").
		Style(style).
		ShowValues(true)
	bc.AddBar("eu-west", 1240)
	bc.AddBar("us-east", 2310)
	bc.AddBar("ap-south", 870)
	if err := bc.RenderTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	bd := charts.NewBreakdownChart(50).
		Title("disk usage").
		Style(style).
		ShowPercent(true)
	bd.AddSegment("system", 12.4)
	bd.AddSegment("media", 48.1)
	bd.AddSegment("docs", 8.6)
	bd.AddSegment("free", 31.0)
	if err := bd.RenderTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, charts.Sparkline([]float64{1, 5, 22, 13, 53, 29, 44, 90}))
	fmt.Fprint(out, charts.SparklineLabeled("mem", []float64{31, 42, 58, 44, 61, 73, 70, 88}))
	fmt.Fprintln(out)

	tbl := table.New().Style(style)
	if color {
		tbl.Theme(th)
	}
	tbl.AddColumn("service", 12, ansitext.AlignLeft)
	tbl.AddColumn("status", 8, ansitext.AlignCenter)
	tbl.AddColumn("p99 ms", 8, ansitext.AlignRight)
	tbl.AddRow("gateway", "up", "41.2")
	tbl.AddRow("ingest", "up", "18.7")
	tbl.AddRow("archive", "down", "-")
	if err := tbl.RenderTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	root := tree.NewNode("termviz")
	pkgNode := root.AddChild("pkg")
	pkgNode.AddChild("canvas").SetMeta("grid core")
	pkgNode.AddChild("charts")
	pkgNode.AddChild("table")
	root.AddChild("main.go")
	if err := tree.NewRenderer().Style(style).RenderTo(out, root); err != nil {
		return err
	}
	fmt.Fprintln(out)

	return toast.New(toast.Success, "all widgets rendered").
		Title("showcase").
		Style(style).
		Theme(th).
		RenderTo(out)
}
