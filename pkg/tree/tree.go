// Package tree renders strict node hierarchies as indented text with
// branch connectors. Rendering is a pure recursive descent: sorting and
// depth limits affect output only and never mutate the stored tree.
package tree

import (
	"io"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// Node is one entry in a tree. A node exclusively owns its children; the
// hierarchy is strict (no cycles, no sharing).
type Node struct {
	Name     string
	Meta     string // optional annotation rendered after the name
	Expanded bool   // collapsed nodes render without their subtree
	children []*Node
}

// NewNode creates an expanded leaf node.
func NewNode(name string) *Node {
	return &Node{Name: name, Expanded: true}
}

// Add appends an existing node as the last child and returns the parent
// for chaining.
func (n *Node) Add(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// AddChild creates a child with the given name, appends it, and returns
// the child so construction can descend.
func (n *Node) AddChild(name string) *Node {
	child := NewNode(name)
	n.children = append(n.children, child)
	return child
}

// SetMeta sets the annotation rendered after the node name.
func (n *Node) SetMeta(meta string) *Node {
	n.Meta = meta
	return n
}

// Children returns the node's children in stored order.
func (n *Node) Children() []*Node {
	return n.children
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Depth returns the maximum depth of the subtree rooted at n. A leaf has
// depth 1.
func (n *Node) Depth() int {
	deepest := 0
	for _, c := range n.children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Renderer configures tree output.
type Renderer struct {
	style    glyphs.Style
	sorted   bool
	maxDepth int // 0 = unlimited
}

// NewRenderer creates a renderer with Unicode connectors, insertion order,
// and no depth limit.
func NewRenderer() *Renderer {
	return &Renderer{style: glyphs.StyleUnicode}
}

// Style selects the connector glyph family.
func (r *Renderer) Style(s glyphs.Style) *Renderer {
	r.style = s
	return r
}

// Sorted toggles alphabetical ordering of children at render time. The
// stored order is never mutated.
func (r *Renderer) Sorted(on bool) *Renderer {
	r.sorted = on
	return r
}

// MaxDepth limits recursion: nodes deeper than depth are omitted entirely
// from the output, not summarized. The root is depth 0. Zero means no
// limit.
func (r *Renderer) MaxDepth(depth int) *Renderer {
	if depth < 0 {
		depth = 0
	}
	r.maxDepth = depth
	return r
}

// Render returns the rendered tree as a string. See RenderTo.
func (r *Renderer) Render(root *Node) string {
	var b strings.Builder
	_ = r.RenderTo(&b, root)
	return b.String()
}

// RenderTo writes the tree rooted at root into w, one node per line. Each
// level extends the accumulated prefix with either a vertical connector or
// blank indent depending on whether the parent was the last sibling.
func (r *Renderer) RenderTo(w io.Writer, root *Node) error {
	if root == nil {
		return nil
	}
	if _, err := io.WriteString(w, r.label(root)+"\n"); err != nil {
		return err
	}
	return r.renderChildren(w, root, "", 1)
}

// renderChildren walks the children of n at the given depth with the
// accumulated connector prefix.
func (r *Renderer) renderChildren(w io.Writer, n *Node, prefix string, depth int) error {
	if !n.Expanded {
		return nil
	}
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil
	}
	set := glyphs.Trees(r.style)

	children := n.children
	if r.sorted && len(children) > 1 {
		children = make([]*Node, len(n.children))
		copy(children, n.children)
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Name < children[j].Name
		})
	}

	for i, c := range children {
		last := i == len(children)-1
		branch := set.Branch
		extend := set.Vertical
		if last {
			branch = set.LastBranch
			extend = set.Indent
		}
		if _, err := io.WriteString(w, prefix+branch+r.label(c)+"\n"); err != nil {
			return err
		}
		if err := r.renderChildren(w, c, prefix+extend, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// label formats a node name with its optional annotation.
func (r *Renderer) label(n *Node) string {
	if n.Meta == "" {
		return n.Name
	}
	return n.Name + " (" + n.Meta + ")"
}
