package glyphs

import "testing"

func TestParseStyleRoundTrip(t *testing.T) {
	for _, s := range []Style{StyleASCII, StyleUnicode, StyleRounded, StyleDouble, StyleHeavy} {
		if got := ParseStyle(s.String()); got != s {
			t.Errorf("ParseStyle(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestParseStyleUnknownFallsBack(t *testing.T) {
	if got := ParseStyle("fancy"); got != StyleUnicode {
		t.Errorf("ParseStyle unknown = %v, want StyleUnicode", got)
	}
}

func TestBordersFallback(t *testing.T) {
	// Style(99) has no dedicated set and must resolve to the Unicode set.
	if got := Borders(Style(99)); got != Borders(StyleUnicode) {
		t.Error("unknown style should fall back to the Unicode border set")
	}
}

func TestLinesRoundedSharesUnicode(t *testing.T) {
	if Lines(StyleRounded) != Lines(StyleUnicode) {
		t.Error("rounded style has no distinct line set")
	}
}

func TestASCIIBordersArePlain(t *testing.T) {
	set := Borders(StyleASCII)
	for _, g := range []string{
		set.TopLeft, set.TopRight, set.BottomLeft, set.BottomRight,
		set.Horizontal, set.Vertical, set.LeftTee, set.RightTee,
		set.TopTee, set.BottomTee, set.Cross,
	} {
		if len(g) != 1 || g[0] > 127 {
			t.Errorf("ASCII border glyph %q is not 7-bit", g)
		}
	}
}

func TestTreeSetEntriesAreFourCells(t *testing.T) {
	for _, style := range []Style{StyleASCII, StyleUnicode, StyleHeavy} {
		set := Trees(style)
		for _, prefix := range []string{set.Branch, set.LastBranch, set.Vertical, set.Indent} {
			if n := len([]rune(prefix)); n != 4 {
				t.Errorf("style %v: prefix %q is %d cells, want 4", style, prefix, n)
			}
		}
	}
}

func TestSparkBlocksAscending(t *testing.T) {
	for i := 1; i < len(SparkBlocks); i++ {
		if SparkBlocks[i] <= SparkBlocks[i-1] {
			t.Errorf("block %d (%q) should be above block %d", i, SparkBlocks[i], i-1)
		}
	}
}
