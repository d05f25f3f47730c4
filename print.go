package tessera

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
)

// Print renders the tree as a human-readable dump with each node's
// kind and computed rectangle:
//
//	<root> [kind=Window pos=(0,0) size=(1920,1080)]
//	├── Header [kind=Boundary pos=(20,20) size=(960,40)]
//	└── Body [kind=Div stack=Row pos=(20,60) size=(960,700)]
//
// The structure is stable for snapshot testing as long as the tree is
// unchanged.
func (t *Tree) Print() string {
	return printNode(t.root).String()
}

func printNode(n *Node) *tree.Tree {
	out := tree.Root(nodeLabel(n))
	for _, c := range n.children {
		out.Child(printNode(c))
	}
	return out
}

func nodeLabel(n *Node) string {
	name := n.name
	if name == "" {
		name = "<root>"
	}
	desc := n.layout
	if desc == nil {
		desc = DefaultLayout()
	}
	label := name + " [kind=" + desc.Kind()
	if _, ok := desc.(Div); ok && n.stack != nil {
		label += " stack=" + n.stack.Direction.String()
	}
	r := n.computed.Rect
	label += fmt.Sprintf(" pos=(%g,%g) size=(%g,%g)", r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y)
	if n.invalid {
		label += " invalid"
	}
	return label + "]"
}
