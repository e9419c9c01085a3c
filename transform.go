package apvd

// TransformKind tags the variant of a Transform (spec §3.3), the same
// tagged-record dispatch style as DtPoly's packed area/type byte.
type TransformKind uint8

const (
	// TransformTranslate translates by a vector.
	TransformTranslate TransformKind = iota
	// TransformScale scales uniformly by one factor.
	TransformScale
	// TransformScaleXY scales independently on x and y.
	TransformScaleXY
	// TransformRotate rotates by an angle (radians).
	TransformRotate
)

// Transform is one elementary 2D affine operation. Exactly one of the
// fields is meaningful, selected by Kind.
type Transform struct {
	Kind  TransformKind
	Delta Point // TransformTranslate
	S     Num   // TransformScale
	Sx    Num   // TransformScaleXY
	Sy    Num   // TransformScaleXY
	Theta Num   // TransformRotate
}

// Translate returns a Transform that translates by (dx, dy).
func Translate(dx, dy Num) Transform {
	return Transform{Kind: TransformTranslate, Delta: Point{dx, dy}}
}

// Scale returns a Transform that scales uniformly by s.
func Scale(s Num) Transform { return Transform{Kind: TransformScale, S: s} }

// ScaleXY returns a Transform that scales independently by (sx, sy).
func ScaleXY(sx, sy Num) Transform { return Transform{Kind: TransformScaleXY, Sx: sx, Sy: sy} }

// Rotate returns a Transform that rotates by theta radians.
func Rotate(theta Num) Transform { return Transform{Kind: TransformRotate, Theta: theta} }

// Apply applies the transform to p.
func (t Transform) Apply(p Point) Point {
	switch t.Kind {
	case TransformTranslate:
		return p.Add(t.Delta)
	case TransformScale:
		return p.Scale(t.S)
	case TransformScaleXY:
		return Point{p.X.Mul(t.Sx), p.Y.Mul(t.Sy)}
	case TransformRotate:
		c, s := t.Theta.Cos(), t.Theta.Sin()
		return Point{
			p.X.Mul(c).Sub(p.Y.Mul(s)),
			p.X.Mul(s).Add(p.Y.Mul(c)),
		}
	}
	panic("apvd: unknown transform kind")
}

// Invert returns the inverse of t.
func (t Transform) Invert() Transform {
	switch t.Kind {
	case TransformTranslate:
		return Translate(t.Delta.X.Neg(), t.Delta.Y.Neg())
	case TransformScale:
		return Scale(t.S.Like(1).Div(t.S))
	case TransformScaleXY:
		return ScaleXY(t.Sx.Like(1).Div(t.Sx), t.Sy.Like(1).Div(t.Sy))
	case TransformRotate:
		return Rotate(t.Theta.Neg())
	}
	panic("apvd: unknown transform kind")
}

// Projection is an ordered list of Transforms applied left-to-right
// (spec §3.3). Applying is a left-fold; inverting reverses the list and
// inverts each element.
type Projection []Transform

// Apply applies every transform of proj, in order, to p.
func (proj Projection) Apply(p Point) Point {
	for _, t := range proj {
		p = t.Apply(p)
	}
	return p
}

// Invert returns the inverse projection.
func (proj Projection) Invert() Projection {
	inv := make(Projection, len(proj))
	for i, t := range proj {
		inv[len(proj)-1-i] = t.Invert()
	}
	return inv
}
