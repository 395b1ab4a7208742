// Package chartfile materializes chart models from declarative YAML
// documents. A chart file lists widgets with their type, style, and data;
// rendering walks the list and writes each widget to the sink in order.
package chartfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/charts"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
	"gitlab.com/tinyland/lab/termviz/pkg/table"
)

// File is a parsed chart document.
type File struct {
	Charts []Spec `yaml:"charts"`
}

// Spec describes one widget. Fields irrelevant to the chosen type are
// ignored.
type Spec struct {
	Type   string `yaml:"type"` // line, bar, breakdown, sparkline, table
	Title  string `yaml:"title"`
	Style  string `yaml:"style"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Values   []float64   `yaml:"values"` // line (y-only) and sparkline data
	Points   []PointSpec `yaml:"points"` // explicit line chart samples
	Bars     []EntrySpec `yaml:"bars"`
	Segments []EntrySpec `yaml:"segments"`
	Headers  []string    `yaml:"headers"`
	Rows     [][]string  `yaml:"rows"`

	Grid        bool `yaml:"grid"`
	Markers     bool `yaml:"markers"`
	ShowValues  bool `yaml:"show_values"`
	ShowPercent bool `yaml:"show_percent"`
}

// PointSpec is a single (x, y) sample.
type PointSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label"`
}

// EntrySpec is a labeled value for bar and breakdown charts.
type EntrySpec struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// knownTypes guards against typos before any rendering starts.
var knownTypes = map[string]bool{
	"line": true, "bar": true, "breakdown": true, "sparkline": true, "table": true,
}

// Parse decodes and validates a chart document from raw bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chartfile: parse YAML: %w", err)
	}
	for i, c := range f.Charts {
		if !knownTypes[c.Type] {
			return nil, fmt.Errorf("chartfile: chart %d: unknown type %q", i, c.Type)
		}
	}
	return &f, nil
}

// Load reads and parses a chart document from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// RenderTo renders every chart in document order, separated by blank
// lines.
func (f *File) RenderTo(w io.Writer) error {
	for i, c := range f.Charts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := c.renderTo(w); err != nil {
			return fmt.Errorf("chartfile: chart %d (%s): %w", i, c.Type, err)
		}
	}
	return nil
}

// renderTo builds the model for one spec and renders it.
func (s Spec) renderTo(w io.Writer) error {
	style := glyphs.ParseStyle(s.Style)
	width := s.Width
	if width <= 0 {
		width = 60
	}
	height := s.Height
	if height <= 0 {
		height = 10
	}

	switch s.Type {
	case "line":
		lc := charts.NewLineChart(width, height).
			Title(s.Title).
			Style(style).
			Grid(s.Grid).
			Markers(s.Markers)
		for _, p := range s.Points {
			lc.AddLabeledPoint(p.X, p.Y, p.Label)
		}
		if len(s.Values) > 0 {
			lc.AddValues(s.Values)
		}
		return lc.RenderTo(w)
	case "bar":
		bc := charts.NewBarChart(width).
			Title(s.Title).
			Style(style).
			ShowValues(s.ShowValues)
		for _, b := range s.Bars {
			bc.AddBar(b.Label, b.Value)
		}
		return bc.RenderTo(w)
	case "breakdown":
		bd := charts.NewBreakdownChart(width).
			Title(s.Title).
			Style(style).
			ShowPercent(s.ShowPercent).
			ShowValues(s.ShowValues)
		for _, seg := range s.Segments {
			bd.AddSegment(seg.Label, seg.Value)
		}
		return bd.RenderTo(w)
	case "sparkline":
		return charts.SparklineTo(w, s.Values)
	case "table":
		t := table.New().Style(style)
		for _, col := range table.AutoColumns(s.Headers, s.Rows) {
			t.AddColumn(col.Header, col.Width, ansitext.AlignLeft)
		}
		for _, row := range s.Rows {
			t.AddRow(row...)
		}
		return t.RenderTo(w)
	}
	return fmt.Errorf("unknown type %q", s.Type)
}
