package tessera

import (
	"strings"

	"github.com/tessera-ui/tessera/internal/layout"
)

// Node is a single entry in a Tree: a named layout descriptor with an
// ordered set of children and a slot for the computed rectangle.
// Nodes are created and addressed through Tree methods; a Node handle
// stays valid until the node is removed from its tree.
type Node struct {
	name      string
	layout    Layout
	stack     *Stack
	depthBias float32
	fontSize  float32 // per-subtree override, 0 inherits
	payload   any

	computed layout.Rect3D
	invalid  bool

	parent   *Node
	children []*Node
	index    map[string]*Node
}

func newNode(name string, l Layout) *Node {
	return &Node{
		name:   name,
		layout: l,
		index:  map[string]*Node{},
	}
}

// Name returns the node's path segment. The root's name may be empty.
func (n *Node) Name() string {
	return n.name
}

// Path returns the /-joined path from the root to this node. The root
// itself has the empty path.
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	segments := []string{}
	for cur := n; cur.parent != nil; cur = cur.parent {
		segments = append(segments, cur.name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

// Layout returns the node's descriptor.
func (n *Node) Layout() Layout {
	return n.layout
}

// SetLayout replaces the node's descriptor. It takes effect on the
// next Compute.
func (n *Node) SetLayout(l Layout) {
	n.layout = l
}

// Stack returns the node's stack flow, or nil when children lay out
// independently.
func (n *Node) Stack() *Stack {
	return n.stack
}

// DepthBias returns the scalar added to this subtree's depth.
func (n *Node) DepthBias() float32 {
	return n.depthBias
}

// Payload returns the opaque host data attached to the node.
func (n *Node) Payload() any {
	return n.payload
}

// Rect returns the rectangle written by the last Compute, in host
// coordinates. Before the first Compute it is zero-size at origin.
func (n *Node) Rect() Rect {
	return n.computed.Rect
}

// Computed returns the full computed rectangle including depth and
// rotation decoration.
func (n *Node) Computed() Rect3D {
	return n.computed
}

// Depth returns the node's computed back-to-front depth.
func (n *Node) Depth() float32 {
	return n.computed.Z
}

// Valid reports whether the last Compute produced a finite rectangle
// for this node. Invalid nodes have a zero rectangle and their
// subtrees are skipped.
func (n *Node) Valid() bool {
	return !n.invalid
}

// Children returns the node's children in insertion order. The slice
// is a copy; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the direct child with the given segment name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.index[name]
	return c, ok
}

func (n *Node) addChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
	n.index[c.name] = c
}

func (n *Node) removeChild(c *Node) {
	for i, cur := range n.children {
		if cur == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	delete(n.index, c.name)
	c.parent = nil
}
