package layout

import "github.com/chewxy/math32"

// Align positions a node inside the residual space of its parent on one
// axis. The expected range is -1 (start edge) through 0 (centered) to
// 1 (end edge), but values outside the range extrapolate.
type Align float32

// Alignment presets.
const (
	AlignStart  Align = -1
	AlignCenter Align = 0
	AlignEnd    Align = 1
)

// Scaling selects how a Solid node scales its ratio against the parent.
type Scaling uint8

const (
	// ScaleFit picks the largest rectangle of the ratio that fits
	// inside the parent.
	ScaleFit Scaling = iota
	// ScaleFill picks the smallest rectangle of the ratio that covers
	// the parent.
	ScaleFill
	// ScaleHorFill always covers the parent's horizontal axis.
	ScaleHorFill
	// ScaleVerFill always covers the parent's vertical axis.
	ScaleVerFill
)

// String returns the scaling mode name.
func (s Scaling) String() string {
	switch s {
	case ScaleFit:
		return "Fit"
	case ScaleFill:
		return "Fill"
	case ScaleHorFill:
		return "HorFill"
	case ScaleVerFill:
		return "VerFill"
	}
	return "Unknown"
}

// Solid sizes a node by a fixed aspect ratio. The node scales with the
// parent but never deforms. Size holds the unitless width:height ratio;
// 1:1, 10:10 and 100:100 are the same shape.
type Solid struct {
	Size    Vec2
	AlignX  Align
	AlignY  Align
	Scaling Scaling
}

// NewSolid returns a centered Fit Solid with the given ratio.
func NewSolid(w, h float32) Solid {
	return Solid{Size: Vec2{X: w, Y: h}}
}

// Kind implements Layout.
func (Solid) Kind() string { return "Solid" }

func (Solid) isLayout() {}

// Valid reports whether the aspect ratio is usable. A zero or negative
// axis cannot be scaled and is rejected with a diagnostic by the solver.
func (s Solid) Valid() bool {
	return s.Size.X > 0 && s.Size.Y > 0
}

// Compute resolves the descriptor against the parent rectangle.
func (s Solid) Compute(parent Rect, _ Axes) Rect {
	var scale float32
	switch s.Scaling {
	case ScaleHorFill:
		scale = parent.Size.X / s.Size.X
	case ScaleVerFill:
		scale = parent.Size.Y / s.Size.Y
	case ScaleFill:
		scale = math32.Max(parent.Size.X/s.Size.X, parent.Size.Y/s.Size.Y)
	default: // ScaleFit
		scale = math32.Min(parent.Size.X/s.Size.X, parent.Size.Y/s.Size.Y)
	}

	size := s.Size.Mul(scale)
	return Rect{
		Pos: Vec2{
			X: parent.Pos.X + lerpAlign(float32(s.AlignX), parent.Size.X-size.X),
			Y: parent.Pos.Y + lerpAlign(float32(s.AlignY), parent.Size.Y-size.Y),
		},
		Size: size,
	}
}
