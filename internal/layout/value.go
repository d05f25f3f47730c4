package layout

// Value represents a length as the sum of independently scaled terms.
// Each term is resolved against a different part of the environment:
// Abs against the absolute scale, Rel against the parent axis length,
// Rem against the ambient font size, and Vw/Vh against the viewport.
//
// Values are plain data. Arithmetic composes termwise and evaluation is
// referentially transparent, so a Value can be shared freely between
// descriptors.
type Value struct {
	Abs float32 // pixels
	Rel float32 // percent of the parent axis length (100 = 100%)
	Rem float32 // multiples of the ambient font size
	Vw  float32 // percent of the viewport width
	Vh  float32 // percent of the viewport height
}

// Abs returns a Value of n pixels.
func Abs(n float32) Value {
	return Value{Abs: n}
}

// Rel returns a Value of p percent of the parent axis length.
func Rel(p float32) Value {
	return Value{Rel: p}
}

// Rem returns a Value of m multiples of the ambient font size.
func Rem(m float32) Value {
	return Value{Rem: m}
}

// Vw returns a Value of p percent of the viewport width.
func Vw(p float32) Value {
	return Value{Vw: p}
}

// Vh returns a Value of p percent of the viewport height.
func Vh(p float32) Value {
	return Value{Vh: p}
}

// Add returns the termwise sum of v and other.
func (v Value) Add(other Value) Value {
	return Value{
		Abs: v.Abs + other.Abs,
		Rel: v.Rel + other.Rel,
		Rem: v.Rem + other.Rem,
		Vw:  v.Vw + other.Vw,
		Vh:  v.Vh + other.Vh,
	}
}

// Sub returns the termwise difference of v and other.
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Neg returns v with every term negated.
func (v Value) Neg() Value {
	return Value{Abs: -v.Abs, Rel: -v.Rel, Rem: -v.Rem, Vw: -v.Vw, Vh: -v.Vh}
}

// Scale returns v with every term multiplied by s.
func (v Value) Scale(s float32) Value {
	return Value{Abs: v.Abs * s, Rel: v.Rel * s, Rem: v.Rem * s, Vw: v.Vw * s, Vh: v.Vh * s}
}

// IsZero reports whether every term is exactly zero.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Env carries everything a Value needs to resolve to pixels on one axis.
type Env struct {
	// Length is the parent's length along the axis being evaluated.
	Length float32
	// FontSize is the ambient font size in pixels.
	FontSize float32
	// Viewport is the root rectangle size in pixels.
	Viewport Vec2
	// AbsScale multiplies the Abs term. Defaults to 1.
	AbsScale float32
}

// Eval resolves the Value to pixels against env.
func (v Value) Eval(env Env) float32 {
	scale := env.AbsScale
	if scale == 0 {
		scale = 1
	}
	return v.Abs*scale +
		v.Rel/100*env.Length +
		v.Rem*env.FontSize +
		v.Vw/100*env.Viewport.X +
		v.Vh/100*env.Viewport.Y
}

// XY pairs a Value per axis. The X component is evaluated against the
// horizontal environment and Y against the vertical one.
type XY struct {
	X, Y Value
}

// AbsXY returns an XY with absolute pixel values on both axes.
func AbsXY(x, y float32) XY {
	return XY{X: Abs(x), Y: Abs(y)}
}

// RelXY returns an XY with parent-relative percentages on both axes.
func RelXY(x, y float32) XY {
	return XY{X: Rel(x), Y: Rel(y)}
}

// RemXY returns an XY with rem multiples on both axes.
func RemXY(x, y float32) XY {
	return XY{X: Rem(x), Y: Rem(y)}
}

// Add returns the termwise sum of p and other on both axes.
func (p XY) Add(other XY) XY {
	return XY{X: p.X.Add(other.X), Y: p.Y.Add(other.Y)}
}

// Sub returns the termwise difference of p and other on both axes.
func (p XY) Sub(other XY) XY {
	return XY{X: p.X.Sub(other.X), Y: p.Y.Sub(other.Y)}
}

// Scale returns p with every term on both axes multiplied by s.
func (p XY) Scale(s float32) XY {
	return XY{X: p.X.Scale(s), Y: p.Y.Scale(s)}
}

// IsZero reports whether both axes are zero Values.
func (p XY) IsZero() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Eval resolves both axes against their respective environments.
func (p XY) Eval(envX, envY Env) Vec2 {
	return Vec2{X: p.X.Eval(envX), Y: p.Y.Eval(envY)}
}
