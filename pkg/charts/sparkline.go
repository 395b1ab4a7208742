package charts

import (
	"io"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// Sparkline renders values as a single newline-terminated row of 8-level
// block glyphs, one glyph per input value. It is a pure function: the
// range is derived from the data and nothing is retained between calls.
func Sparkline(values []float64) string {
	lo, hi := sparkRange(values)
	return SparklineBounded(values, lo, hi)
}

// SparklineBounded is Sparkline with an explicit value range. Each value
// maps to level floor((v-min)*7/(max-min)); a flat range puts every value
// at level 0.
func SparklineBounded(values []float64, min, max float64) string {
	var b strings.Builder
	b.Grow(len(values)*3 + 1)
	for _, v := range values {
		b.WriteRune(glyphs.SparkBlocks[sparkLevel(v, min, max)])
	}
	b.WriteByte('\n')
	return b.String()
}

// SparklineLabeled renders values like Sparkline with an optional label
// prefix and the formatted minimum and maximum flanking the glyph row.
func SparklineLabeled(label string, values []float64) string {
	lo, hi := sparkRange(values)
	row := strings.TrimSuffix(SparklineBounded(values, lo, hi), "\n")
	var b strings.Builder
	if label != "" {
		b.WriteString(label)
		b.WriteByte(' ')
	}
	b.WriteString(formatValue(lo))
	b.WriteByte(' ')
	b.WriteString(row)
	b.WriteByte(' ')
	b.WriteString(formatValue(hi))
	b.WriteByte('\n')
	return b.String()
}

// SparklineTo writes Sparkline output to w.
func SparklineTo(w io.Writer, values []float64) error {
	_, err := io.WriteString(w, Sparkline(values))
	return err
}

// sparkLevel maps v into [0, 7] by truncating division.
func sparkLevel(v, min, max float64) int {
	if max <= min {
		return 0
	}
	level := int((v - min) * 7 / (max - min))
	if level < 0 {
		return 0
	}
	if level > 7 {
		return 7
	}
	return level
}

// sparkRange scans values for min and max. Empty input yields (0, 0).
func sparkRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
