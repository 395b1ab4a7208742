package charts

import (
	"strings"
	"testing"
)

func TestSparklineRegressionFixture(t *testing.T) {
	got := Sparkline([]float64{1, 5, 22, 13, 53, 29, 44, 90})
	want := "▁▁▂▁▅▃▄█\n"
	if got != want {
		t.Errorf("Sparkline = %q, want %q", got, want)
	}
}

func TestSparklineFlatRangeAllLowestBlock(t *testing.T) {
	got := Sparkline([]float64{4, 4, 4, 4})
	want := strings.Repeat("▁", 4) + "\n"
	if got != want {
		t.Errorf("flat sparkline = %q, want %q", got, want)
	}
}

func TestSparklineOneGlyphPerValue(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	got := Sparkline(values)
	if !strings.HasSuffix(got, "\n") {
		t.Fatal("missing trailing newline")
	}
	if n := len([]rune(strings.TrimSuffix(got, "\n"))); n != len(values) {
		t.Errorf("got %d glyphs, want %d", n, len(values))
	}
}

func TestSparklineEmptyInput(t *testing.T) {
	if got := Sparkline(nil); got != "\n" {
		t.Errorf("empty sparkline = %q, want just the newline", got)
	}
}

func TestSparklineStateless(t *testing.T) {
	values := []float64{1, 2, 3}
	first := Sparkline(values)
	second := Sparkline(values)
	if first != second {
		t.Error("two renders of the same data must agree")
	}
	if values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Error("input slice must not be mutated")
	}
}

func TestSparklineBoundedClamps(t *testing.T) {
	got := SparklineBounded([]float64{-10, 50, 200}, 0, 100)
	runes := []rune(strings.TrimSuffix(got, "\n"))
	if runes[0] != '▁' {
		t.Errorf("below-range value = %q, want lowest block", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("above-range value = %q, want highest block", runes[2])
	}
}

func TestSparklineLabeled(t *testing.T) {
	got := SparklineLabeled("cpu", []float64{0, 50, 100})
	if got != "cpu 0 ▁▄█ 100\n" {
		t.Errorf("SparklineLabeled = %q", got)
	}
	if got := SparklineLabeled("", []float64{0, 100}); got != "0 ▁█ 100\n" {
		t.Errorf("unlabeled = %q", got)
	}
}

func TestSparklineToWritesSink(t *testing.T) {
	var b strings.Builder
	if err := SparklineTo(&b, []float64{0, 7}); err != nil {
		t.Fatalf("SparklineTo: %v", err)
	}
	if b.String() != "▁█\n" {
		t.Errorf("SparklineTo = %q", b.String())
	}
}
