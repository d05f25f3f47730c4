package layout

// Div is a container node. By default it takes the parent's full
// rectangle; MinSize and MaxSize (zero Value = unconstrained) clamp the
// inherited size per axis. Child placement is delegated to the
// container's Stack when one is set; otherwise children lay themselves
// out against the Div's rectangle like any other parent.
type Div struct {
	MinSize XY
	MaxSize XY
}

// Kind implements Layout.
func (Div) Kind() string { return "Div" }

func (Div) isLayout() {}

// Compute resolves the descriptor against the parent rectangle.
func (d Div) Compute(parent Rect, axes Axes) Rect {
	size := parent.Size
	size.X = clampAxis(size.X, d.MinSize.X, d.MaxSize.X, axes.X)
	size.Y = clampAxis(size.Y, d.MinSize.Y, d.MaxSize.Y, axes.Y)
	return Rect{Pos: parent.Pos, Size: size}
}

func clampAxis(length float32, minV, maxV Value, env Env) float32 {
	lo := float32(0)
	if !minV.IsZero() {
		lo = minV.Eval(env)
	}
	hi := length
	if !maxV.IsZero() {
		hi = maxV.Eval(env)
	}
	return clamp(length, lo, hi)
}
