package apvd

import "math"

// XYRR is an axis-aligned ellipse: center + (rx,ry) (spec §3.2).
type XYRR struct {
	C      Point
	Rx, Ry Num
}

// NewXYRR returns an axis-aligned ellipse centered at (cx,cy) with radii
// (rx,ry).
func NewXYRR(cx, cy, rx, ry Num) XYRR { return XYRR{C: Point{cx, cy}, Rx: rx, Ry: ry} }

// Kind returns ShapeXYRR.
func (e XYRR) Kind() ShapeKind { return ShapeXYRR }

// NumCoords returns 4 (cx, cy, rx, ry).
func (e XYRR) NumCoords() int { return 4 }

// Center returns the ellipse's center.
func (e XYRR) Center() Point { return e.C }

// Area returns pi*rx*ry.
func (e XYRR) Area() Num { return e.Rx.Like(math.Pi).Mul(e.Rx).Mul(e.Ry) }

// AtY returns the (up to two) x-crossings of the ellipse at height y.
func (e XYRR) AtY(y Num) []Num {
	ymin, ymax := e.C.Y.Sub(e.Ry).Val(), e.C.Y.Add(e.Ry).Val()
	if y.Val() < ymin || y.Val() >= ymax {
		return nil
	}
	dy := y.Sub(e.C.Y).Div(e.Ry)
	disc := dy.Like(1).Sub(dy.Mul(dy))
	if disc.Val() < 0 {
		disc = disc.Like(0)
	}
	root := disc.Sqrt().Mul(e.Rx)
	return []Num{e.C.X.Sub(root), e.C.X.Add(root)}
}

// BoundaryCoord returns the parametric angle of p: atan2((y-cy)/ry, (x-cx)/rx).
func (e XYRR) BoundaryCoord(p Point) float64 {
	u := (p.X.Val() - e.C.X.Val()) / e.Rx.Val()
	v := (p.Y.Val() - e.C.Y.Val()) / e.Ry.Val()
	return math.Atan2(v, u)
}

// BoundaryPoint returns the point on the ellipse at parametric angle coord.
func (e XYRR) BoundaryPoint(coord float64) Point {
	cosT, sinT := e.C.X.Like(math.Cos(coord)), e.C.X.Like(math.Sin(coord))
	return Point{
		e.C.X.Add(e.Rx.Mul(cosT)),
		e.C.Y.Add(e.Ry.Mul(sinT)),
	}
}

// BoundaryMidpoint returns the point at the parametric-angle midpoint.
func (e XYRR) BoundaryMidpoint(c0, c1 float64) Point {
	return e.BoundaryPoint(midAngle(c0, c1))
}

// Contains reports whether p is inside or on the ellipse.
func (e XYRR) Contains(p Point) bool {
	u := (p.X.Val() - e.C.X.Val()) / e.Rx.Val()
	v := (p.Y.Val() - e.C.Y.Val()) / e.Ry.Val()
	return u*u+v*v <= 1
}

// Projection returns the canonical projection mapping e onto the unit
// circle: translate to the origin, then scale components by (1/rx,1/ry).
func (e XYRR) Projection() Projection {
	return Projection{
		Translate(e.C.X.Neg(), e.C.Y.Neg()),
		ScaleXY(e.Rx.Like(1).Div(e.Rx), e.Ry.Like(1).Div(e.Ry)),
	}
}

// Transform applies t. Rotate turns e into an XYRRT (an axis-aligned
// ellipse loses that property under rotation); the other kinds keep e
// axis-aligned.
func (e XYRR) Transform(t Transform) Shape {
	switch t.Kind {
	case TransformTranslate:
		return XYRR{C: t.Apply(e.C), Rx: e.Rx, Ry: e.Ry}
	case TransformScale:
		return XYRR{C: t.Apply(e.C), Rx: e.Rx.Mul(t.S), Ry: e.Ry.Mul(t.S)}
	case TransformScaleXY:
		return XYRR{C: t.Apply(e.C), Rx: e.Rx.Mul(t.Sx), Ry: e.Ry.Mul(t.Sy)}
	case TransformRotate:
		return XYRRT{C: t.Apply(e.C), Rx: e.Rx, Ry: e.Ry, T: t.Theta}
	}
	panic("apvd: unknown transform kind")
}
