// Package charts implements the termviz chart models: line charts, bar
// charts, breakdown (stacked proportional) bars, and sparklines. A model is
// created empty, populated with add-calls, configured through chained
// setters, then rendered read-only into an explicit output sink.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ErrLengthMismatch is returned by parallel-sequence bulk inserts when the
// two inputs differ in length. The model is left unchanged.
var ErrLengthMismatch = errors.New("charts: x and y sequences differ in length")

// noData is printed in place of chart content when a model holds no
// samples. Rendering an empty model is not an error.
const noData = "(no data)"

// DataPoint is a single sample in a line chart.
type DataPoint struct {
	X     float64
	Y     float64
	Label string
}

// writeLines writes each line to w with a trailing newline.
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// render captures RenderTo output into a string, for callers that want the
// convenience form. RenderTo into a strings.Builder cannot fail.
func render(rt interface{ RenderTo(io.Writer) error }) string {
	var b strings.Builder
	_ = rt.RenderTo(&b)
	return b.String()
}

// formatValue formats a float compactly for labels: integers without a
// decimal point, everything else with one decimal place.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
