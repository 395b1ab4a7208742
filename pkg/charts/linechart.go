package charts

import (
	"io"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/canvas"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// LineStats summarizes the y-values of a line chart. It is derived on
// demand and never mutates the model.
type LineStats struct {
	Count int
	MinY  float64
	MaxY  float64
	MeanY float64
}

// LineChart plots (x, y) samples as connected line segments on a character
// grid. Points render in ascending x order regardless of insertion order;
// ties keep insertion order.
type LineChart struct {
	width  int
	height int
	points []DataPoint
	bounds canvas.Bounds

	style       glyphs.Style
	title       string
	xLabel      string
	yLabel      string
	color       string // SGR sequence applied to chart rows
	showGrid    bool
	showMarkers bool
	showYAxis   bool
	yAxisWidth  int
}

// NewLineChart creates an empty auto-scaling chart with the given grid
// dimensions. Dimensions below 1 are clamped.
func NewLineChart(width, height int) *LineChart {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &LineChart{
		width:      width,
		height:     height,
		bounds:     canvas.AutoBounds(),
		style:      glyphs.StyleUnicode,
		yAxisWidth: 6,
	}
}

// Title sets the centered title line drawn above the grid.
func (lc *LineChart) Title(s string) *LineChart {
	lc.title = s
	return lc
}

// AxisLabels sets the x and y axis captions drawn centered below the grid.
func (lc *LineChart) AxisLabels(x, y string) *LineChart {
	lc.xLabel = x
	lc.yLabel = y
	return lc
}

// Color sets the SGR sequence wrapped around each chart row. See
// ansitext for the fixed sequence set.
func (lc *LineChart) Color(seq string) *LineChart {
	lc.color = seq
	return lc
}

// Style selects the glyph family used for lines and markers.
func (lc *LineChart) Style(s glyphs.Style) *LineChart {
	lc.style = s
	return lc
}

// Grid toggles the gridline overlay. Gridlines are drawn before data, so
// they never occlude line segments or markers.
func (lc *LineChart) Grid(on bool) *LineChart {
	lc.showGrid = on
	return lc
}

// Markers toggles explicit point markers on top of line segments.
func (lc *LineChart) Markers(on bool) *LineChart {
	lc.showMarkers = on
	return lc
}

// YAxis toggles the value-label column on the left edge of the grid.
func (lc *LineChart) YAxis(on bool) *LineChart {
	lc.showYAxis = on
	return lc
}

// Bounds fixes the axis ranges explicitly and disables auto-scaling; no
// insertion recomputes them afterward.
func (lc *LineChart) Bounds(minX, maxX, minY, maxY float64) *LineChart {
	lc.bounds = canvas.FixedBounds(minX, maxX, minY, maxY)
	return lc
}

// AddPoint appends a single sample and refits auto-scaled bounds.
func (lc *LineChart) AddPoint(x, y float64) *LineChart {
	return lc.AddLabeledPoint(x, y, "")
}

// AddLabeledPoint appends a sample with a label drawn beside its marker.
func (lc *LineChart) AddLabeledPoint(x, y float64, label string) *LineChart {
	lc.points = append(lc.points, DataPoint{X: x, Y: y, Label: label})
	lc.refit()
	return lc
}

// AddXY bulk-appends parallel x and y sequences. Sequences of different
// lengths fail with ErrLengthMismatch before any mutation.
func (lc *LineChart) AddXY(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i := range xs {
		lc.points = append(lc.points, DataPoint{X: xs[i], Y: ys[i]})
	}
	lc.refit()
	return nil
}

// AddValues bulk-appends a y-only sequence with x implied as 0, 1, 2, ….
func (lc *LineChart) AddValues(ys []float64) *LineChart {
	for i, y := range ys {
		lc.points = append(lc.points, DataPoint{X: float64(i), Y: y})
	}
	lc.refit()
	return lc
}

// refit recomputes auto-scaled bounds from the full point set. Fixed
// bounds are left alone.
func (lc *LineChart) refit() {
	if !lc.bounds.Auto {
		return
	}
	xs := make([]float64, len(lc.points))
	ys := make([]float64, len(lc.points))
	for i, p := range lc.points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	lc.bounds.Fit(xs, ys)
}

// AxisBounds reports the current axis ranges.
func (lc *LineChart) AxisBounds() canvas.Bounds {
	return lc.bounds
}

// Stats reports count, min, max, and mean of the y-values.
func (lc *LineChart) Stats() LineStats {
	st := LineStats{Count: len(lc.points)}
	if st.Count == 0 {
		return st
	}
	st.MinY = lc.points[0].Y
	st.MaxY = lc.points[0].Y
	sum := 0.0
	for _, p := range lc.points {
		if p.Y < st.MinY {
			st.MinY = p.Y
		}
		if p.Y > st.MaxY {
			st.MaxY = p.Y
		}
		sum += p.Y
	}
	st.MeanY = sum / float64(st.Count)
	return st
}

// Render returns the chart as a string. See RenderTo.
func (lc *LineChart) Render() string {
	return render(lc)
}

// RenderTo draws the chart into w: optional title, the grid rows (each
// layer overwriting the one beneath: gridlines, segments, markers, point
// labels), then optional centered axis captions.
func (lc *LineChart) RenderTo(w io.Writer) error {
	if len(lc.points) == 0 {
		return writeLines(w, []string{noData})
	}

	sorted := make([]DataPoint, len(lc.points))
	copy(sorted, lc.points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	set := glyphs.Lines(lc.style)
	cv := canvas.New(lc.width, lc.height)
	if lc.showGrid {
		cv.Grid(set)
	}

	sx := make([]int, len(sorted))
	sy := make([]int, len(sorted))
	for i, p := range sorted {
		sx[i] = lc.bounds.ScreenX(p.X, lc.width)
		sy[i] = lc.bounds.ScreenY(p.Y, lc.height)
	}

	for i := 1; i < len(sorted); i++ {
		cv.Line(sx[i-1], sy[i-1], sx[i], sy[i], set)
	}

	if lc.showMarkers {
		for i := range sorted {
			cv.Set(sx[i], sy[i], set.Point)
		}
		for i, p := range sorted {
			if p.Label != "" {
				cv.WriteString(sx[i]+1, sy[i], p.Label)
			}
		}
	}

	axisW := 0
	if lc.showYAxis {
		axisW = lc.yAxisWidth
	}
	totalW := axisW + lc.width

	var lines []string
	if lc.title != "" {
		lines = append(lines, strings.TrimRight(ansitext.PadCenter(lc.title, totalW), " "))
	}
	for y := 0; y < lc.height; y++ {
		row := strings.TrimRight(cv.Row(y), " ")
		if lc.color != "" && row != "" {
			row = ansitext.Colorize(row, lc.color)
		}
		if lc.showYAxis {
			row = ansitext.PadLeft(lc.yAxisLabel(y), axisW-1) + " " + row
		}
		lines = append(lines, row)
	}
	if lc.xLabel != "" {
		lines = append(lines, strings.TrimRight(ansitext.PadCenter(lc.xLabel, totalW), " "))
	}
	if lc.yLabel != "" {
		lines = append(lines, strings.TrimRight(ansitext.PadCenter(lc.yLabel, totalW), " "))
	}
	return writeLines(w, lines)
}

// yAxisLabel formats the data value represented by grid row y. Row 0 is
// the axis maximum; the bottom row is the minimum.
func (lc *LineChart) yAxisLabel(y int) string {
	b := lc.bounds
	if lc.height <= 1 {
		return formatValue((b.MinY + b.MaxY) / 2)
	}
	v := b.MaxY - (b.MaxY-b.MinY)*float64(y)/float64(lc.height-1)
	return formatValue(v)
}
