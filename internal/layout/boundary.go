package layout

// Boundary pins a node to two corners expressed in parent-local units:
// Pos1 is the top-left corner and Pos2 the bottom-right one. The node's
// size is the difference of the two; a negative difference clamps to
// zero at the solver boundary.
type Boundary struct {
	Pos1 XY
	Pos2 XY
}

// Kind implements Layout.
func (Boundary) Kind() string { return "Boundary" }

func (Boundary) isLayout() {}

// Compute resolves the descriptor against the parent rectangle.
// The result is in host coordinates (parent origin applied).
func (b Boundary) Compute(parent Rect, axes Axes) Rect {
	p1 := b.Pos1.Eval(axes.X, axes.Y)
	p2 := b.Pos2.Eval(axes.X, axes.Y)
	return Rect{
		Pos:  parent.Pos.Add(p1),
		Size: p2.Sub(p1),
	}
}
