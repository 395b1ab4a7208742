package tree

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// chain builds root -> child -> grandchild -> great-grandchild.
func chain() *Node {
	root := NewNode("root")
	root.AddChild("child").AddChild("grandchild").AddChild("great-grandchild")
	return root
}

func TestTreeDepthLimitOmitsDeepNodes(t *testing.T) {
	out := NewRenderer().MaxDepth(2).Render(chain())
	if !strings.Contains(out, "grandchild") {
		t.Error("depth-2 node should render")
	}
	if strings.Contains(out, "great-grandchild") {
		t.Error("node beyond the depth limit must be omitted entirely")
	}
}

func TestTreeUnlimitedDepthByDefault(t *testing.T) {
	out := NewRenderer().Render(chain())
	if !strings.Contains(out, "great-grandchild") {
		t.Error("default renderer should not limit depth")
	}
}

func TestTreeBranchGlyphs(t *testing.T) {
	root := NewNode("r")
	root.AddChild("first")
	root.AddChild("last")

	out := NewRenderer().Style(glyphs.StyleASCII).Render(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[1] != "|-- first" {
		t.Errorf("middle child line = %q", lines[1])
	}
	if lines[2] != "`-- last" {
		t.Errorf("last child line = %q", lines[2])
	}
}

func TestTreePrefixAccumulation(t *testing.T) {
	root := NewNode("r")
	a := root.AddChild("a")
	a.AddChild("a1")
	root.AddChild("b")

	out := NewRenderer().Style(glyphs.StyleASCII).Render(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// a has a following sibling, so its child continues under a vertical bar.
	if lines[2] != "|   `-- a1" {
		t.Errorf("nested line = %q, want %q", lines[2], "|   `-- a1")
	}
}

func TestTreeLastSiblingChildUsesBlankIndent(t *testing.T) {
	root := NewNode("r")
	root.AddChild("a")
	b := root.AddChild("b")
	b.AddChild("b1")

	out := NewRenderer().Style(glyphs.StyleASCII).Render(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[3] != "    `-- b1" {
		t.Errorf("nested line = %q, want %q", lines[3], "    `-- b1")
	}
}

func TestTreeSortedRenderDoesNotMutate(t *testing.T) {
	root := NewNode("r")
	root.AddChild("zebra")
	root.AddChild("apple")

	out := NewRenderer().Sorted(true).Style(glyphs.StyleASCII).Render(root)
	if strings.Index(out, "apple") > strings.Index(out, "zebra") {
		t.Error("sorted render should list apple before zebra")
	}
	if root.Children()[0].Name != "zebra" {
		t.Error("render-time sorting must not mutate the stored order")
	}
}

func TestTreeCollapsedNodeHidesSubtree(t *testing.T) {
	root := NewNode("r")
	a := root.AddChild("a")
	a.AddChild("hidden")
	a.Expanded = false

	out := NewRenderer().Render(root)
	if !strings.Contains(out, "a") {
		t.Error("collapsed node itself should render")
	}
	if strings.Contains(out, "hidden") {
		t.Error("children of a collapsed node must not render")
	}
}

func TestTreeMeta(t *testing.T) {
	root := NewNode("r")
	root.AddChild("pkg").SetMeta("3 files")
	out := NewRenderer().Render(root)
	if !strings.Contains(out, "pkg (3 files)") {
		t.Errorf("output %q missing the annotation", out)
	}
}

func TestTreeCount(t *testing.T) {
	if got := chain().Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if got := NewNode("leaf").Count(); got != 1 {
		t.Errorf("leaf Count = %d, want 1", got)
	}
}

func TestTreeDepth(t *testing.T) {
	if got := chain().Depth(); got != 4 {
		t.Errorf("Depth = %d, want 4", got)
	}
	if got := NewNode("leaf").Depth(); got != 1 {
		t.Errorf("leaf Depth = %d, want 1", got)
	}
}

func TestTreeNilRoot(t *testing.T) {
	if got := NewRenderer().Render(nil); got != "" {
		t.Errorf("nil root = %q, want empty", got)
	}
}
