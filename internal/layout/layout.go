package layout

// Layout is the closed set of per-node layout descriptors. A descriptor
// maps a parent rectangle plus an evaluation environment to the node's
// own rectangle; the solver dispatches on the concrete type.
//
// The set is sealed: Boundary, Window, Solid, and Div are the only
// implementations. There is no user extension point.
type Layout interface {
	// Kind returns the descriptor name used in diagnostics and dumps.
	Kind() string

	isLayout()
}

// Default returns the descriptor nodes get when none is specified:
// a Window covering the full parent.
func Default() Layout {
	return Window{Size: RelXY(100, 100)}
}

// Axes bundles the two per-axis environments a descriptor evaluates
// against.
type Axes struct {
	X, Y Env
}

// AxesFor builds the evaluation environments for children of parent.
func AxesFor(parent Rect, fontSize float32, viewport Vec2, absScale float32) Axes {
	return Axes{
		X: Env{Length: parent.Size.X, FontSize: fontSize, Viewport: viewport, AbsScale: absScale},
		Y: Env{Length: parent.Size.Y, FontSize: fontSize, Viewport: viewport, AbsScale: absScale},
	}
}
