package chartfile

import (
	"strings"
	"testing"
)

const sampleDoc = `
charts:
  - type: sparkline
    values: [1, 5, 22, 13, 53, 29, 44, 90]
  - type: table
    style: ascii
    headers: [name, count]
    rows:
      - [alpha, "3"]
      - [beta, "12"]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Charts) != 2 {
		t.Fatalf("parsed %d charts, want 2", len(f.Charts))
	}
	if f.Charts[0].Type != "sparkline" || len(f.Charts[0].Values) != 8 {
		t.Errorf("first chart = %+v", f.Charts[0])
	}
	if f.Charts[1].Type != "table" || len(f.Charts[1].Rows) != 2 {
		t.Errorf("second chart = %+v", f.Charts[1])
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	doc := "charts:\n  - type: sparkline\n    values: [1]\n  - type: pie\n"
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("unknown type should fail")
	}
	if !strings.Contains(err.Error(), "chart 1") || !strings.Contains(err.Error(), "pie") {
		t.Errorf("err = %v, want chart index and offending type", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("charts: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestRenderToWalksCharts(t *testing.T) {
	f, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var sb strings.Builder
	if err := f.RenderTo(&sb); err != nil {
		t.Fatalf("RenderTo: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "▁▁▂▁▅▃▄█\n") {
		t.Errorf("output does not start with sparkline:\n%s", out)
	}
	if !strings.Contains(out, "\n\n") {
		t.Error("charts should be separated by a blank line")
	}
	for _, want := range []string{"name", "alpha", "12", "+--"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSpecDefaultsDimensions(t *testing.T) {
	doc := "charts:\n  - type: bar\n    bars:\n      - {label: a, value: 4}\n      - {label: b, value: 2}\n"
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var sb strings.Builder
	if err := f.RenderTo(&sb); err != nil {
		t.Fatalf("RenderTo: %v", err)
	}
	if !strings.Contains(sb.String(), "a") || !strings.Contains(sb.String(), "█") {
		t.Errorf("bar chart output unexpected:\n%s", sb.String())
	}
}
