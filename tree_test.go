package tessera

import (
	"errors"
	"strings"
	"testing"
)

func TestCreate(t *testing.T) {
	tests := map[string]struct {
		paths   []string
		wantErr error
	}{
		"single node":              {paths: []string{"a"}},
		"nested":                   {paths: []string{"a", "a/b", "a/b/c"}},
		"siblings":                 {paths: []string{"a", "b", "c"}},
		"duplicate":                {paths: []string{"a", "a"}, wantErr: ErrDuplicateName},
		"duplicate nested":         {paths: []string{"a/b", "a/b"}, wantErr: ErrDuplicateName},
		"empty path":               {paths: []string{""}, wantErr: ErrPathConflict},
		"empty segment":            {paths: []string{"a//b"}, wantErr: ErrPathConflict},
		"leading slash":            {paths: []string{"/a"}, wantErr: ErrPathConflict},
		"trailing slash":           {paths: []string{"a/"}, wantErr: ErrPathConflict},
		"existing as intermediate": {paths: []string{"a", "a/b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr, err := New()
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			for _, p := range tt.paths[:len(tt.paths)-1] {
				if _, err := tr.Create(p, DefaultLayout()); err != nil {
					t.Fatalf("Create(%q) setup error: %v", p, err)
				}
			}
			last := tt.paths[len(tt.paths)-1]
			node, err := tr.Create(last, DefaultLayout())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create(%q) error = %v, want %v", last, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create(%q) error: %v", last, err)
			}
			if node.Path() != last {
				t.Errorf("node.Path() = %q, want %q", node.Path(), last)
			}
		})
	}
}

func TestCreateIntermediates(t *testing.T) {
	tr, _ := New()
	if _, err := tr.Create("a/b/c", Boundary{}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// The missing intermediates are created with the default layout.
	for _, path := range []string{"a", "a/b"} {
		node, ok := tr.Get(path)
		if !ok {
			t.Fatalf("intermediate %q not created", path)
		}
		if node.Layout().Kind() != "Window" {
			t.Errorf("intermediate %q kind = %q, want Window", path, node.Layout().Kind())
		}
	}
	leaf, _ := tr.Get("a/b/c")
	if leaf.Layout().Kind() != "Boundary" {
		t.Errorf("leaf kind = %q, want Boundary", leaf.Layout().Kind())
	}
}

func TestCreateDuplicateLeavesTreeUnchanged(t *testing.T) {
	tr, _ := New()
	if _, err := tr.Create("a/b", DefaultLayout()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	before := snapshotPaths(tr)

	if _, err := tr.Create("a/b", DefaultLayout()); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Create duplicate error = %v, want ErrDuplicateName", err)
	}
	if after := snapshotPaths(tr); after != before {
		t.Errorf("tree changed by failed create:\nbefore %q\nafter  %q", before, after)
	}
}

func TestCreateAnonymous(t *testing.T) {
	tr, _ := New()
	tr.Create("list", Div{})

	n1, err := tr.CreateAnonymous("list", DefaultLayout())
	if err != nil {
		t.Fatalf("CreateAnonymous error: %v", err)
	}
	n2, err := tr.CreateAnonymous("list", DefaultLayout())
	if err != nil {
		t.Fatalf("CreateAnonymous error: %v", err)
	}
	if n1.Name() == n2.Name() {
		t.Errorf("generated names collide: %q", n1.Name())
	}
	if got, ok := tr.Get("list/" + n1.Name()); !ok || got != n1 {
		t.Errorf("anonymous node not addressable at %q", "list/"+n1.Name())
	}

	if _, err := tr.CreateAnonymous("missing", DefaultLayout()); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateAnonymous under missing parent error = %v, want ErrNotFound", err)
	}
}

func TestGet(t *testing.T) {
	tr, _ := New()
	tr.Create("a/b", DefaultLayout())

	if node, ok := tr.Get(""); !ok || node != tr.Root() {
		t.Errorf("Get(\"\") should return the root")
	}
	if _, ok := tr.Get("a/b"); !ok {
		t.Errorf("Get(\"a/b\") not found")
	}
	if _, ok := tr.Get("a/x"); ok {
		t.Errorf("Get(\"a/x\") found a node that does not exist")
	}
}

func TestRemove(t *testing.T) {
	tr, _ := New()
	tr.Create("a/b/c", DefaultLayout())
	tr.Create("a/d", DefaultLayout())

	removed, err := tr.Remove("a/b")
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if removed.Name() != "b" {
		t.Errorf("removed.Name() = %q, want b", removed.Name())
	}
	if _, ok := tr.Get("a/b"); ok {
		t.Errorf("removed subtree still addressable")
	}
	if _, ok := tr.Get("a/b/c"); ok {
		t.Errorf("descendant of removed subtree still addressable")
	}
	if _, ok := tr.Get("a/d"); !ok {
		t.Errorf("sibling of removed subtree lost")
	}

	if _, err := tr.Remove("a/b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove error = %v, want ErrNotFound", err)
	}
	if _, err := tr.Remove(""); !errors.Is(err, ErrPathConflict) {
		t.Errorf("Remove root error = %v, want ErrPathConflict", err)
	}
}

func TestReinsertionAppends(t *testing.T) {
	tr, _ := New()
	tr.Create("parent", Div{})
	tr.Create("parent/a", DefaultLayout())
	tr.Create("parent/b", DefaultLayout())
	tr.Create("parent/c", DefaultLayout())

	tr.Remove("parent/a")
	tr.Create("parent/a", DefaultLayout())

	parent, _ := tr.Get("parent")
	var order []string
	for _, c := range parent.Children() {
		order = append(order, c.Name())
	}
	if got := strings.Join(order, ","); got != "b,c,a" {
		t.Errorf("children order = %q, want b,c,a", got)
	}
}

func TestMerge(t *testing.T) {
	tr, _ := New()
	tr.Create("target", Div{})
	tr.Create("target/existing", DefaultLayout())

	other, _ := New()
	other.Create("one", DefaultLayout())
	other.Create("one/deep", DefaultLayout())
	other.Create("two", DefaultLayout())

	if err := tr.Merge(other, "target"); err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	for _, path := range []string{"target/one", "target/one/deep", "target/two"} {
		if _, ok := tr.Get(path); !ok {
			t.Errorf("merged node %q not addressable", path)
		}
	}
	if len(other.Root().Children()) != 0 {
		t.Errorf("source tree still owns %d children after merge", len(other.Root().Children()))
	}

	target, _ := tr.Get("target")
	var order []string
	for _, c := range target.Children() {
		order = append(order, c.Name())
	}
	if got := strings.Join(order, ","); got != "existing,one,two" {
		t.Errorf("children order after merge = %q, want existing,one,two", got)
	}
}

func TestMergeCollisionIsAtomic(t *testing.T) {
	tr, _ := New()
	tr.Create("target", Div{})
	tr.Create("target/shared", DefaultLayout())
	before := snapshotPaths(tr)

	other, _ := New()
	other.Create("fresh", DefaultLayout())
	other.Create("shared", DefaultLayout())
	otherBefore := snapshotPaths(other)

	err := tr.Merge(other, "target")
	if !errors.Is(err, ErrMergeCollision) {
		t.Fatalf("Merge error = %v, want ErrMergeCollision", err)
	}
	if after := snapshotPaths(tr); after != before {
		t.Errorf("target tree changed by failed merge:\nbefore %q\nafter  %q", before, after)
	}
	if after := snapshotPaths(other); after != otherBefore {
		t.Errorf("source tree changed by failed merge:\nbefore %q\nafter  %q", otherBefore, after)
	}
}

func TestSettersRequireExistingPath(t *testing.T) {
	tr, _ := New()

	tests := map[string]func() error{
		"SetStack":     func() error { return tr.SetStack("missing", Stack{}) },
		"ClearStack":   func() error { return tr.ClearStack("missing") },
		"SetDepthBias": func() error { return tr.SetDepthBias("missing", 1) },
		"SetPayload":   func() error { return tr.SetPayload("missing", 42) },
		"SetFontSize":  func() error { return tr.SetFontSize("missing", 12) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.Is(err, ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSetPayload(t *testing.T) {
	tr, _ := New()
	tr.Create("a", DefaultLayout())

	if err := tr.SetPayload("a", "hello"); err != nil {
		t.Fatalf("SetPayload error: %v", err)
	}
	node, _ := tr.Get("a")
	if got, ok := node.Payload().(string); !ok || got != "hello" {
		t.Errorf("Payload() = %v, want hello", node.Payload())
	}
}

func TestWalkPreOrder(t *testing.T) {
	tr, _ := New()
	tr.Create("a/x", DefaultLayout())
	tr.Create("a/y", DefaultLayout())
	tr.Create("b", DefaultLayout())

	want := ",a,a/x,a/y,b"
	if got := snapshotPaths(tr); got != want {
		t.Errorf("walk order = %q, want %q", got, want)
	}
	// Stable across calls while the tree is unchanged.
	if got := snapshotPaths(tr); got != want {
		t.Errorf("second walk order = %q, want %q", got, want)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tr, _ := New()
	tr.Create("a", DefaultLayout())
	tr.Create("b", DefaultLayout())

	visited := 0
	tr.Walk(func(path string, n *Node) bool {
		visited++
		return path != "a"
	})
	if visited != 2 {
		t.Errorf("visited %d nodes, want 2", visited)
	}
}

func TestPathUniqueness(t *testing.T) {
	tr, _ := New()
	tr.Create("a/b", DefaultLayout())
	tr.Create("a/c", DefaultLayout())
	tr.Remove("a/b")
	tr.Create("a/b", DefaultLayout())
	tr.Create("d", DefaultLayout())

	seen := map[string]bool{}
	tr.Walk(func(path string, n *Node) bool {
		if seen[path] {
			t.Errorf("duplicate path %q", path)
		}
		seen[path] = true
		return true
	})
}

func TestNewWithRoot(t *testing.T) {
	tr, err := NewWithRoot("main")
	if err != nil {
		t.Fatalf("NewWithRoot error: %v", err)
	}
	if tr.Root().Name() != "main" {
		t.Errorf("root name = %q, want main", tr.Root().Name())
	}

	if _, err := NewWithRoot("a/b"); !errors.Is(err, ErrPathConflict) {
		t.Errorf("NewWithRoot with slash error = %v, want ErrPathConflict", err)
	}
}

func TestOptions(t *testing.T) {
	tests := map[string]struct {
		opt     Option
		wantErr bool
	}{
		"font size":          {opt: WithFontSize(18)},
		"zero font size":     {opt: WithFontSize(0), wantErr: true},
		"abs scale":          {opt: WithAbsScale(2)},
		"negative abs scale": {opt: WithAbsScale(-1), wantErr: true},
		"depth step":         {opt: WithDepthStep(0)},
		"negative step":      {opt: WithDepthStep(-1), wantErr: true},
		"nil logger":         {opt: WithLogger(nil), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.opt)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// snapshotPaths flattens a tree's walk order into one string for
// cheap before/after comparisons.
func snapshotPaths(tr *Tree) string {
	var paths []string
	tr.Walk(func(path string, n *Node) bool {
		paths = append(paths, path)
		return true
	})
	return strings.Join(paths, ",")
}
