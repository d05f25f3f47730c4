// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tessera

import "github.com/tessera-ui/tessera/internal/layout"

// Value is a length expression: the sum of independently scaled pixel,
// parent-relative, rem, and viewport terms. Values are plain data and
// compose with Add, Sub, Neg, and Scale.
type Value = layout.Value

// Env is the evaluation environment a Value resolves against.
type Env = layout.Env

// XY pairs two Values for the x and y axes.
type XY = layout.XY

// Vec2 is a plain 2D vector of pixels.
type Vec2 = layout.Vec2

// Rect is an axis-aligned rectangle in pixels, y-down.
type Rect = layout.Rect

// Rect3D is a Rect with a depth and rotation decoration for
// world-space hosts. The extra fields never influence layout.
type Rect3D = layout.Rect3D

// Layout is the descriptor attached to a node: Boundary, Window,
// Solid, or Div.
type Layout = layout.Layout

// Boundary pins a node to two parent-relative corners.
type Boundary = layout.Boundary

// Window places a node at an explicit position and size, offset by an
// anchor pivot inside the node's own box.
type Window = layout.Window

// Solid sizes a node to a fixed aspect ratio fitted or filled into the
// parent.
type Solid = layout.Solid

// Div is a container sized to its parent within optional min/max
// bounds. Children flow by their own descriptors, or by a Stack when
// one is set on the node.
type Div = layout.Div

// Align positions a Solid within the residual parent space on one
// axis, from -1 (start) through 0 (center) to 1 (end).
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Scaling selects how a Solid's ratio maps onto the parent.
type Scaling = layout.Scaling

const (
	ScaleFit     = layout.ScaleFit
	ScaleFill    = layout.ScaleFill
	ScaleHorFill = layout.ScaleHorFill
	ScaleVerFill = layout.ScaleVerFill
)

// Stack describes how a Div flows its children.
type Stack = layout.Stack

// StackMargin is the main-axis spacing around every stack child.
type StackMargin = layout.StackMargin

// Direction is the main axis of a Stack.
type Direction = layout.Direction

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// MainAlign distributes residual main-axis space in a stack line.
type MainAlign = layout.MainAlign

const (
	MainStart        = layout.MainStart
	MainCenter       = layout.MainCenter
	MainEnd          = layout.MainEnd
	MainSpaceBetween = layout.MainSpaceBetween
	MainSpaceAround  = layout.MainSpaceAround
)

// CrossAlign positions children within their stack line.
type CrossAlign = layout.CrossAlign

const (
	CrossStart   = layout.CrossStart
	CrossCenter  = layout.CrossCenter
	CrossEnd     = layout.CrossEnd
	CrossStretch = layout.CrossStretch
)

// Abs creates a Value of n pixels.
func Abs(n float32) Value {
	return layout.Abs(n)
}

// Rel creates a Value of p percent of the parent axis length.
func Rel(p float32) Value {
	return layout.Rel(p)
}

// Rem creates a Value of m multiples of the ambient font size.
func Rem(m float32) Value {
	return layout.Rem(m)
}

// Vw creates a Value of p percent of the viewport width.
func Vw(p float32) Value {
	return layout.Vw(p)
}

// Vh creates a Value of p percent of the viewport height.
func Vh(p float32) Value {
	return layout.Vh(p)
}

// AbsXY creates an XY with pixel values on both axes.
func AbsXY(x, y float32) XY {
	return layout.AbsXY(x, y)
}

// RelXY creates an XY with parent-relative percentages on both axes.
func RelXY(x, y float32) XY {
	return layout.RelXY(x, y)
}

// RemXY creates an XY with rem multiples on both axes.
func RemXY(x, y float32) XY {
	return layout.RemXY(x, y)
}

// NewRect creates a Rect from a position and dimensions in pixels.
func NewRect(x, y, w, h float32) Rect {
	return layout.NewRect(x, y, w, h)
}

// NewSolid creates a Solid with the given aspect ratio, centered and
// fitting the parent.
func NewSolid(w, h float32) Solid {
	return layout.NewSolid(w, h)
}

// DefaultLayout returns the descriptor given to implicitly created
// nodes: a Window covering its whole parent.
func DefaultLayout() Layout {
	return layout.Default()
}
