package tessera

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tree is a retained node hierarchy plus the ambient layout
// configuration (font size, absolute scale, depth step). It is created
// by New and mutated through path-addressed operations; Compute
// resolves every node to a rectangle.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root      *Node
	fontSize  float32
	absScale  float32
	depthStep float32
	logger    *Logger
}

// New creates an empty Tree whose root has the empty name and a
// descriptor covering the whole root rectangle.
func New(opts ...Option) (*Tree, error) {
	return NewWithRoot("", opts...)
}

// NewWithRoot creates an empty Tree with a named root. The name must
// not contain a slash.
func NewWithRoot(name string, opts ...Option) (*Tree, error) {
	if strings.Contains(name, "/") {
		return nil, fmt.Errorf("root name %q: %w", name, ErrPathConflict)
	}
	t := &Tree{
		root:      newNode(name, DefaultLayout()),
		fontSize:  DefaultFontSize,
		absScale:  1,
		depthStep: DefaultDepthStep,
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// splitPath validates a path and returns its segments. The empty path
// addresses the root and yields no segments.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, "/")
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("path %q has an empty segment: %w", path, ErrPathConflict)
		}
	}
	return segments, nil
}

// find returns the node at path, or an error wrapping ErrNotFound.
func (t *Tree) find(path string) (*Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := t.root
	for _, s := range segments {
		next, ok := cur.index[s]
		if !ok {
			return nil, fmt.Errorf("path %q: %w", path, ErrNotFound)
		}
		cur = next
	}
	return cur, nil
}

// Create adds a node at path with the given descriptor, creating any
// missing intermediate nodes with the default descriptor. It returns
// ErrDuplicateName if the full path already exists and ErrPathConflict
// for a malformed path. A failed Create leaves the tree unchanged.
func (t *Tree) Create(path string, l Layout) (*Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("path %q: %w", path, ErrPathConflict)
	}

	// Walk the existing prefix first so a duplicate is detected before
	// anything is inserted.
	cur := t.root
	i := 0
	for ; i < len(segments); i++ {
		next, ok := cur.index[segments[i]]
		if !ok {
			break
		}
		cur = next
	}
	if i == len(segments) {
		return nil, fmt.Errorf("path %q: %w", path, ErrDuplicateName)
	}

	for ; i < len(segments)-1; i++ {
		mid := newNode(segments[i], DefaultLayout())
		cur.addChild(mid)
		cur = mid
	}
	node := newNode(segments[len(segments)-1], l)
	cur.addChild(node)
	return node, nil
}

// CreateAnonymous adds a child with a generated unique name under the
// node at parentPath. Use it for nodes the host never addresses by
// path, such as repeated list entries.
func (t *Tree) CreateAnonymous(parentPath string, l Layout) (*Node, error) {
	parent, err := t.find(parentPath)
	if err != nil {
		return nil, err
	}
	name := uuid.NewString()
	for {
		if _, ok := parent.index[name]; !ok {
			break
		}
		name = uuid.NewString()
	}
	node := newNode(name, l)
	parent.addChild(node)
	return node, nil
}

// Get returns the node at path. The empty path addresses the root.
func (t *Tree) Get(path string) (*Node, bool) {
	node, err := t.find(path)
	if err != nil {
		return nil, false
	}
	return node, true
}

// Rect returns the computed rectangle of the node at path.
func (t *Tree) Rect(path string) (Rect, bool) {
	node, ok := t.Get(path)
	if !ok {
		return Rect{}, false
	}
	return node.Rect(), true
}

// Remove detaches the subtree at path and returns its root node. The
// tree's root cannot be removed.
func (t *Tree) Remove(path string) (*Node, error) {
	node, err := t.find(path)
	if err != nil {
		return nil, err
	}
	if node == t.root {
		return nil, fmt.Errorf("cannot remove the root: %w", ErrPathConflict)
	}
	node.parent.removeChild(node)
	return node, nil
}

// Merge splices every top-level node of other under the node at
// targetPath, preserving their insertion order. It fails with
// ErrMergeCollision if any incoming name already exists under the
// target; on failure both trees are unchanged. On success other is
// left empty.
func (t *Tree) Merge(other *Tree, targetPath string) error {
	target, err := t.find(targetPath)
	if err != nil {
		return err
	}
	for _, c := range other.root.children {
		if _, ok := target.index[c.name]; ok {
			return fmt.Errorf("name %q already exists under %q: %w", c.name, targetPath, ErrMergeCollision)
		}
	}
	incoming := other.root.children
	other.root.children = nil
	other.root.index = map[string]*Node{}
	for _, c := range incoming {
		target.addChild(c)
	}
	return nil
}

// SetStack sets the stack flow on the Div node at path. Stacks on
// non-Div nodes are ignored by the solver.
func (t *Tree) SetStack(path string, s Stack) error {
	node, err := t.find(path)
	if err != nil {
		return err
	}
	node.stack = &s
	return nil
}

// ClearStack removes the stack flow from the node at path.
func (t *Tree) ClearStack(path string) error {
	node, err := t.find(path)
	if err != nil {
		return err
	}
	node.stack = nil
	return nil
}

// SetDepthBias sets the scalar added to the depth of the subtree at
// path.
func (t *Tree) SetDepthBias(path string, bias float32) error {
	node, err := t.find(path)
	if err != nil {
		return err
	}
	node.depthBias = bias
	return nil
}

// SetPayload attaches opaque host data to the node at path. The kernel
// never reads it.
func (t *Tree) SetPayload(path string, payload any) error {
	node, err := t.find(path)
	if err != nil {
		return err
	}
	node.payload = payload
	return nil
}

// SetFontSize overrides the ambient font size for the subtree at path,
// in pixels. A size of 0 restores inheritance.
func (t *Tree) SetFontSize(path string, px float32) error {
	node, err := t.find(path)
	if err != nil {
		return err
	}
	if px < 0 {
		return fmt.Errorf("font size %v: %w", px, ErrInvalidDescriptor)
	}
	node.fontSize = px
	return nil
}

// Walk visits every node in pre-order, children in insertion order,
// calling fn with each node's path. Returning false from fn stops the
// walk. The order is stable while the tree is unchanged.
func (t *Tree) Walk(fn func(path string, node *Node) bool) {
	walk(t.root, "", fn)
}

func walk(n *Node, path string, fn func(string, *Node) bool) bool {
	if !fn(path, n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, childPath(path, c.name), fn) {
			return false
		}
	}
	return true
}
