package layout

// Window places a node by origin and size. Anchor, in [0,1] per axis,
// picks the pivot inside the node's own box that Pos refers to:
// (0,0) is the top-left corner (the default), (0.5,0.5) the center,
// (1,1) the bottom-right corner.
type Window struct {
	Pos    XY
	Size   XY
	Anchor Vec2
}

// Kind implements Layout.
func (Window) Kind() string { return "Window" }

func (Window) isLayout() {}

// Compute resolves the descriptor against the parent rectangle.
func (w Window) Compute(parent Rect, axes Axes) Rect {
	size := w.Size.Eval(axes.X, axes.Y)
	pos := w.Pos.Eval(axes.X, axes.Y)
	pos.X -= w.Anchor.X * size.X
	pos.Y -= w.Anchor.Y * size.Y
	return Rect{
		Pos:  parent.Pos.Add(pos),
		Size: size,
	}
}
