package charts

import (
	"math"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// barLine renders bd and returns the stacked bar line stripped of escapes.
func barLine(t *testing.T, bd *BreakdownChart) string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(bd.Render(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("no output")
	}
	return ansitext.Strip(lines[0])
}

func TestBreakdownWidthsSumExactly(t *testing.T) {
	cases := []struct {
		name   string
		total  int
		values []float64
	}{
		{"thirds", 10, []float64{1, 1, 1}},
		{"rounding drift", 7, []float64{33.3, 33.3, 33.4}},
		{"single segment", 24, []float64{5}},
		{"dominant first", 15, []float64{97, 1, 1, 1}},
		{"many small", 9, []float64{1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bd := NewBreakdownChart(tc.total).Style(glyphs.StyleASCII)
			for i, v := range tc.values {
				bd.AddSegment(string(rune('a'+i)), v)
			}
			bar := barLine(t, bd)
			if got := len([]rune(bar)); got != tc.total {
				t.Errorf("bar width = %d, want exactly %d (bar %q)", got, tc.total, bar)
			}
		})
	}
}

func TestBreakdownPercentagesRecomputedEveryRender(t *testing.T) {
	bd := NewBreakdownChart(20)
	bd.AddSegment("a", 25).AddSegment("b", 75)

	segs := bd.Segments()
	if math.Abs(segs[0].Percentage-25) > 1e-9 || math.Abs(segs[1].Percentage-75) > 1e-9 {
		t.Fatalf("percentages = %v, %v", segs[0].Percentage, segs[1].Percentage)
	}

	// Mutating values via a fresh add shifts shares on the next render.
	bd.AddSegment("c", 100)
	segs = bd.Segments()
	if math.Abs(segs[2].Percentage-50) > 1e-9 {
		t.Errorf("segment c percentage = %v, want 50", segs[2].Percentage)
	}
	if math.Abs(segs[0].Percentage-12.5) > 1e-9 {
		t.Errorf("segment a percentage = %v, want 12.5", segs[0].Percentage)
	}
}

func TestBreakdownZeroTotalLeavesPercentagesZero(t *testing.T) {
	bd := NewBreakdownChart(10).Style(glyphs.StyleASCII)
	bd.AddSegment("a", 0).AddSegment("b", 0)
	for _, s := range bd.Segments() {
		if s.Percentage != 0 {
			t.Errorf("segment %s percentage = %v, want 0", s.Label, s.Percentage)
		}
	}
	// The bar still spans the exact total width.
	if bar := barLine(t, bd); len([]rune(bar)) != 10 {
		t.Errorf("bar width = %d, want 10", len([]rune(bar)))
	}
}

func TestBreakdownNegativeValuesClamped(t *testing.T) {
	bd := NewBreakdownChart(12).Style(glyphs.StyleASCII)
	bd.AddSegment("neg", -10).AddSegment("pos", 10)
	segs := bd.Segments()
	if segs[0].Percentage != 0 {
		t.Errorf("negative segment percentage = %v, want 0", segs[0].Percentage)
	}
	if math.Abs(segs[1].Percentage-100) > 1e-9 {
		t.Errorf("positive segment percentage = %v, want 100", segs[1].Percentage)
	}
}

func TestBreakdownLegendInsertionOrder(t *testing.T) {
	bd := NewBreakdownChart(20).ShowPercent(true).ShowValues(true)
	bd.AddSegment("zebra", 10).AddSegment("apple", 30)

	lines := strings.Split(strings.TrimRight(bd.Render(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want bar + 2 legend entries", len(lines))
	}
	if !strings.Contains(lines[1], "zebra") || !strings.Contains(lines[2], "apple") {
		t.Error("legend must keep segment insertion order")
	}
	if !strings.Contains(lines[2], "75%") {
		t.Errorf("legend entry = %q, want percentage", lines[2])
	}
	if !strings.Contains(lines[2], "(30)") {
		t.Errorf("legend entry = %q, want raw value", lines[2])
	}
}

func TestBreakdownLegendSharesBarColors(t *testing.T) {
	bd := NewBreakdownChart(20)
	bd.AddColoredSegment("a", 1, ansitext.FgMagenta)

	lines := strings.Split(strings.TrimRight(bd.Render(), "\n"), "\n")
	if !strings.Contains(lines[0], ansitext.FgMagenta) {
		t.Error("bar missing the segment color")
	}
	if !strings.Contains(lines[1], ansitext.FgMagenta) {
		t.Error("legend swatch missing the segment color")
	}
}

func TestBreakdownEmptyRendersNoData(t *testing.T) {
	if got := NewBreakdownChart(10).Render(); got != "(no data)\n" {
		t.Errorf("empty chart = %q, want %q", got, "(no data)\n")
	}
}

func TestBreakdownMinSegmentWidth(t *testing.T) {
	bd := NewBreakdownChart(20).Style(glyphs.StyleASCII).MinSegmentWidth(3)
	bd.AddSegment("tiny", 0.1).AddSegment("rest", 99.9)
	bar := barLine(t, bd)
	if len([]rune(bar)) != 20 {
		t.Fatalf("bar width = %d, want 20", len([]rune(bar)))
	}
	// The tiny first segment still gets its 3-cell floor.
	segs := bd.Segments()
	if segs[0].Percentage >= 1 {
		t.Fatalf("setup: tiny segment should be under 1%%, got %v", segs[0].Percentage)
	}
}
