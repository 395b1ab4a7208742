package charts

import (
	"io"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// Segment is one slice of a breakdown bar. Percentage is derived from the
// current values immediately before every render and is never
// authoritative between renders.
type Segment struct {
	Label      string
	Value      float64
	Color      string // SGR sequence; empty entries take palette colors by index
	Percentage float64
}

// BreakdownChart renders a single stacked bar whose segment widths are
// proportional to their share of the total, followed by a legend in
// insertion order. Negative values are clamped to zero; they fall outside
// the supported input domain.
type BreakdownChart struct {
	totalWidth      int
	minSegmentWidth int
	segments        []Segment

	style       glyphs.Style
	title       string
	showPercent bool
	showValues  bool
}

// NewBreakdownChart creates an empty chart totalWidth cells wide.
func NewBreakdownChart(totalWidth int) *BreakdownChart {
	if totalWidth < 1 {
		totalWidth = 1
	}
	return &BreakdownChart{
		totalWidth:      totalWidth,
		minSegmentWidth: 1,
		style:           glyphs.StyleUnicode,
	}
}

// Title sets the centered title line drawn above the bar.
func (bd *BreakdownChart) Title(s string) *BreakdownChart {
	bd.title = s
	return bd
}

// Style selects the glyph family for segment fills.
func (bd *BreakdownChart) Style(s glyphs.Style) *BreakdownChart {
	bd.style = s
	return bd
}

// MinSegmentWidth sets the floor applied to every segment except the last,
// which always absorbs the exact leftover width.
func (bd *BreakdownChart) MinSegmentWidth(n int) *BreakdownChart {
	if n < 0 {
		n = 0
	}
	bd.minSegmentWidth = n
	return bd
}

// ShowPercent toggles percentages in the legend.
func (bd *BreakdownChart) ShowPercent(on bool) *BreakdownChart {
	bd.showPercent = on
	return bd
}

// ShowValues toggles raw values in the legend.
func (bd *BreakdownChart) ShowValues(on bool) *BreakdownChart {
	bd.showValues = on
	return bd
}

// AddSegment appends a segment colored from the palette by its index.
func (bd *BreakdownChart) AddSegment(label string, value float64) *BreakdownChart {
	return bd.AddColoredSegment(label, value, "")
}

// AddColoredSegment appends a segment with an explicit SGR color sequence.
func (bd *BreakdownChart) AddColoredSegment(label string, value float64, seq string) *BreakdownChart {
	bd.segments = append(bd.segments, Segment{Label: label, Value: value, Color: seq})
	return bd
}

// Segments returns the segments with percentages freshly derived.
func (bd *BreakdownChart) Segments() []Segment {
	bd.recomputePercentages()
	out := make([]Segment, len(bd.segments))
	copy(out, bd.segments)
	return out
}

// recomputePercentages derives each segment's share of the clamped total.
// A non-positive total leaves every percentage at 0.
func (bd *BreakdownChart) recomputePercentages() {
	total := 0.0
	for _, s := range bd.segments {
		if s.Value > 0 {
			total += s.Value
		}
	}
	for i := range bd.segments {
		if total <= 0 || bd.segments[i].Value <= 0 {
			bd.segments[i].Percentage = 0
			continue
		}
		bd.segments[i].Percentage = bd.segments[i].Value / total * 100
	}
}

// allocateWidths turns percentages into cell widths that sum exactly to
// the total width. Every segment but the last rounds its ideal width,
// clamped to the minimum segment width and to the remaining unallocated
// cells; the last segment absorbs the exact leftover, so rounding drift
// can never change the bar length.
func (bd *BreakdownChart) allocateWidths() []int {
	n := len(bd.segments)
	widths := make([]int, n)
	remaining := bd.totalWidth
	for i, s := range bd.segments {
		if i == n-1 {
			widths[i] = remaining
			break
		}
		w := int(math.Round(s.Percentage / 100 * float64(bd.totalWidth)))
		if w < bd.minSegmentWidth {
			w = bd.minSegmentWidth
		}
		if w > remaining {
			w = remaining
		}
		widths[i] = w
		remaining -= w
	}
	return widths
}

// segmentColor resolves the SGR sequence for segment i.
func (bd *BreakdownChart) segmentColor(i int) string {
	if bd.segments[i].Color != "" {
		return bd.segments[i].Color
	}
	return ansitext.PaletteColor(i)
}

// Render returns the chart as a string. See RenderTo.
func (bd *BreakdownChart) Render() string {
	return render(bd)
}

// RenderTo draws the stacked bar and its legend into w. Legend entries
// appear in segment insertion order, each tagged with the same color used
// in the bar.
func (bd *BreakdownChart) RenderTo(w io.Writer) error {
	if len(bd.segments) == 0 {
		return writeLines(w, []string{noData})
	}

	bd.recomputePercentages()
	widths := bd.allocateWidths()
	set := glyphs.Bars(bd.style)

	var lines []string
	if bd.title != "" {
		lines = append(lines, strings.TrimRight(ansitext.PadCenter(bd.title, bd.totalWidth), " "))
	}

	var bar strings.Builder
	for i, width := range widths {
		if width == 0 {
			continue
		}
		bar.WriteString(ansitext.Colorize(strings.Repeat(set.Filled, width), bd.segmentColor(i)))
	}
	lines = append(lines, bar.String())

	for i, s := range bd.segments {
		var entry strings.Builder
		entry.WriteString(ansitext.Colorize(set.Filled, bd.segmentColor(i)))
		entry.WriteString(" ")
		entry.WriteString(s.Label)
		if bd.showPercent {
			entry.WriteString(" ")
			entry.WriteString(formatValue(s.Percentage))
			entry.WriteString("%")
		}
		if bd.showValues {
			entry.WriteString(" (")
			entry.WriteString(formatValue(s.Value))
			entry.WriteString(")")
		}
		lines = append(lines, entry.String())
	}
	return writeLines(w, lines)
}
