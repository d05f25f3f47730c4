package tessera

import (
	"github.com/chewxy/math32"

	"github.com/tessera-ui/tessera/internal/layout"
)

// Compute resolves every node to a rectangle in host coordinates.
// root is the rectangle the tree's root lays out against; its size
// doubles as the viewport for vw/vh units. fontSize is the ambient
// font size in pixels; a non-positive value falls back to the tree's
// configured default.
//
// Compute always runs to completion. Nodes whose descriptor cannot be
// evaluated, or whose rectangle comes out NaN or infinite, are hidden
// (zero rectangle, subtree skipped) and reported in the returned
// diagnostics in pre-order.
func (t *Tree) Compute(root Rect, fontSize float32) []Diagnostic {
	if fontSize <= 0 {
		fontSize = t.fontSize
	}
	s := &solver{
		tree:     t,
		viewport: root.Size,
		warned:   map[string]bool{},
	}
	s.solve(t.root, "", root, 0, fontSize)
	return s.diags
}

type solver struct {
	tree     *Tree
	viewport Vec2
	diags    []Diagnostic
	warned   map[string]bool
}

// solve evaluates n's descriptor against the context rectangle ctx and
// recurses into its children.
func (s *solver) solve(n *Node, path string, ctx Rect, parentDepth, font float32) {
	if n.fontSize > 0 {
		font = n.fontSize
	}
	desc := n.layout
	if desc == nil {
		desc = DefaultLayout()
	}

	if solid, ok := desc.(Solid); ok && !solid.Valid() {
		s.fail(n, path, ErrInvalidDescriptor)
		return
	}

	axes := layout.AxesFor(ctx, font, s.viewport, s.tree.absScale)
	var rect Rect
	switch d := desc.(type) {
	case Boundary:
		rect = d.Compute(ctx, axes)
	case Window:
		rect = d.Compute(ctx, axes)
	case Solid:
		rect = d.Compute(ctx, axes)
	case Div:
		rect = d.Compute(ctx, axes)
	}
	s.place(n, path, rect, parentDepth, font)
}

// place writes the computed rectangle after the numeric checks and
// lays out the children.
func (s *solver) place(n *Node, path string, rect Rect, parentDepth, font float32) {
	if !rect.IsFinite() {
		s.fail(n, path, ErrNumericOverflow)
		return
	}
	rect, clamped := rect.ClampSize()
	if clamped && !s.warned[path] {
		s.warned[path] = true
		s.tree.logger.Warn("negative size clamped to zero", "path", path)
	}

	depth := parentDepth + s.tree.depthStep + n.depthBias
	n.computed = layout.Rect3D{Rect: rect, Z: depth}
	n.invalid = false

	if len(n.children) == 0 {
		return
	}
	if _, ok := n.layout.(Div); ok && n.stack != nil {
		s.flow(n, path, rect, depth, font)
		return
	}
	for _, c := range n.children {
		s.solve(c, childPath(path, c.name), rect, depth, font)
	}
}

// flow lays out the children of a Div through its stack: each child is
// measured intrinsically, packed into slots, and then pinned to its
// slot with its declared position applied as an offset.
func (s *solver) flow(n *Node, path string, rect Rect, depth, font float32) {
	st := *n.stack
	horizontal := st.Direction.Horizontal()
	mainLen, crossLen := rect.Size.X, rect.Size.Y
	if !horizontal {
		mainLen, crossLen = crossLen, mainLen
	}

	mainEnv := layout.Env{Length: mainLen, FontSize: font, Viewport: s.viewport, AbsScale: s.tree.absScale}
	crossEnv := layout.Env{Length: crossLen, FontSize: font, Viewport: s.viewport, AbsScale: s.tree.absScale}
	gapMain := st.Gap.X.Eval(mainEnv)
	gapCross := st.Gap.Y.Eval(crossEnv)
	marginStart := st.Margin.Start.Eval(mainEnv)
	marginEnd := st.Margin.End.Eval(mainEnv)

	items := make([]layout.Item, len(n.children))
	for i, c := range n.children {
		main, cross := s.measure(c, horizontal, crossLen, font)
		items[i] = layout.Item{
			Main:        main,
			Cross:       cross,
			MarginStart: marginStart,
			MarginEnd:   marginEnd,
		}
	}

	slots := st.Place(items, mainLen, crossLen, gapMain, gapCross)
	for i, c := range n.children {
		slot := slots[i]
		var slotRect Rect
		if horizontal {
			slotRect = NewRect(slot.MainPos, slot.CrossPos, slot.Main, slot.Cross)
		} else {
			slotRect = NewRect(slot.CrossPos, slot.MainPos, slot.Cross, slot.Main)
		}
		slotRect = slotRect.Translate(rect.Pos)
		s.solveSlot(c, childPath(path, c.name), slotRect, depth, font)
	}
}

// solveSlot resolves a stack child whose size was already fixed by
// measurement and packing. The child keeps its slot's size so the
// rectangle stays the one alignment and gaps were computed for; only
// the declared position is evaluated, against the slot, and applied as
// an offset after placement.
func (s *solver) solveSlot(n *Node, path string, slot Rect, parentDepth, font float32) {
	if n.fontSize > 0 {
		font = n.fontSize
	}
	desc := n.layout
	if desc == nil {
		desc = DefaultLayout()
	}

	if solid, ok := desc.(Solid); ok && !solid.Valid() {
		s.fail(n, path, ErrInvalidDescriptor)
		return
	}

	axes := layout.AxesFor(slot, font, s.viewport, s.tree.absScale)
	rect := slot
	switch d := desc.(type) {
	case Window:
		off := d.Pos.Eval(axes.X, axes.Y)
		off.X -= d.Anchor.X * slot.Size.X
		off.Y -= d.Anchor.Y * slot.Size.Y
		rect = slot.Translate(off)
	case Boundary:
		rect = slot.Translate(d.Pos1.Eval(axes.X, axes.Y))
	}
	s.place(n, path, rect, parentDepth, font)
}

// measure resolves a stack child's intrinsic main and cross lengths.
// The main axis is unbounded, so parent-relative terms on it resolve
// against zero; the cross axis is the parent's cross length. Solid
// children scale their ratio to the cross axis.
func (s *solver) measure(n *Node, horizontal bool, crossLen, font float32) (main, cross float32) {
	if n.fontSize > 0 {
		font = n.fontSize
	}
	desc := n.layout
	if desc == nil {
		desc = DefaultLayout()
	}

	if solid, ok := desc.(Solid); ok {
		if !solid.Valid() {
			return 0, 0
		}
		ratioMain, ratioCross := solid.Size.X, solid.Size.Y
		if !horizontal {
			ratioMain, ratioCross = ratioCross, ratioMain
		}
		return ratioMain * (crossLen / ratioCross), crossLen
	}

	meas := Rect{Size: Vec2{X: 0, Y: crossLen}}
	if !horizontal {
		meas.Size = Vec2{X: crossLen, Y: 0}
	}
	axes := layout.AxesFor(meas, font, s.viewport, s.tree.absScale)

	var size Vec2
	switch d := desc.(type) {
	case Boundary:
		size = d.Compute(meas, axes).Size
	case Window:
		size = d.Compute(meas, axes).Size
	case Div:
		size = d.Compute(meas, axes).Size
	}
	main, cross = size.X, size.Y
	if !horizontal {
		main, cross = cross, main
	}
	return math32.Max(0, main), math32.Max(0, cross)
}

// fail hides the subtree rooted at n and records a diagnostic.
func (s *solver) fail(n *Node, path string, cause error) {
	s.diags = append(s.diags, Diagnostic{Path: path, Err: cause})
	hide(n)
}

func hide(n *Node) {
	n.computed = layout.Rect3D{}
	n.invalid = true
	for _, c := range n.children {
		hide(c)
	}
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
