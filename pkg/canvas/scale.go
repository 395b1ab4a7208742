package canvas

import "math"

// autoPad is the margin added to each side of an auto-scaled axis range,
// as a fraction of the data extent.
const autoPad = 0.05

// Bounds maps data-space values onto screen cells for both axes. It is
// either auto-scaled (refitted from the full point set after every
// insertion) or fixed by an explicit call, never both.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Auto       bool
}

// AutoBounds returns a zero range that refits itself via Fit.
func AutoBounds() Bounds {
	return Bounds{Auto: true}
}

// FixedBounds returns explicit bounds that Fit leaves untouched.
func FixedBounds(minX, maxX, minY, maxY float64) Bounds {
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Fit recomputes auto-scaled bounds from the full extent of xs and ys,
// expanding each nonzero range by 5% per side. A flat range is kept as-is
// so the degenerate-range fallback in Ratio stays reachable instead of
// being masked by artificial padding. NaN and infinite samples are skipped.
// Fixed bounds are never recomputed.
func (b *Bounds) Fit(xs, ys []float64) {
	if !b.Auto {
		return
	}
	b.MinX, b.MaxX = padRange(extent(xs))
	b.MinY, b.MaxY = padRange(extent(ys))
}

// extent scans values for the finite min and max. An empty or all-invalid
// slice yields (0, 0).
func extent(values []float64) (lo, hi float64) {
	found := false
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v < lo {
			lo = v
		}
		if !found || v > hi {
			hi = v
		}
		found = true
	}
	if !found {
		return 0, 0
	}
	return lo, hi
}

// padRange expands a nonzero range by autoPad on each side.
func padRange(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		return lo, hi
	}
	return lo - span*autoPad, hi + span*autoPad
}

// Ratio normalizes v into [0, 1] within the [lo, hi] range. A flat or
// inverted range yields 0.5 so degenerate data centers instead of dividing
// by zero.
func Ratio(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	r := (v - lo) / (hi - lo)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// ScreenX maps a data x value onto a column in [0, width-1].
func (b Bounds) ScreenX(x float64, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(Ratio(x, b.MinX, b.MaxX) * float64(width-1)))
}

// ScreenY maps a data y value onto a row in [0, height-1]. The axis is
// inverted: larger values land on lower row indices.
func (b Bounds) ScreenY(y float64, height int) int {
	if height <= 1 {
		return 0
	}
	return int(math.Round((1 - Ratio(y, b.MinY, b.MaxY)) * float64(height-1)))
}
