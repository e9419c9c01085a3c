package apvd

import "math"

// XYRRT is a rotated ellipse: center + (rx,ry) + rotation angle t
// (spec §3.2).
type XYRRT struct {
	C      Point
	Rx, Ry Num
	T      Num
}

// NewXYRRT returns a rotated ellipse centered at (cx,cy) with radii
// (rx,ry) rotated by angle t (radians).
func NewXYRRT(cx, cy, rx, ry, t Num) XYRRT {
	return XYRRT{C: Point{cx, cy}, Rx: rx, Ry: ry, T: t}
}

// Kind returns ShapeXYRRT.
func (e XYRRT) Kind() ShapeKind { return ShapeXYRRT }

// NumCoords returns 5 (cx, cy, rx, ry, t).
func (e XYRRT) NumCoords() int { return 5 }

// Center returns the ellipse's center.
func (e XYRRT) Center() Point { return e.C }

// Area returns pi*rx*ry (rotation does not change area).
func (e XYRRT) Area() Num { return e.Rx.Like(math.Pi).Mul(e.Rx).Mul(e.Ry) }

// level rotates p into the ellipse's own (unrotated) axis frame, spec
// §4.3's "first rotate the plane by -t to level the rotated ellipse".
func (e XYRRT) level(p Point) Point {
	d := p.Sub(e.C)
	return Rotate(e.T.Neg()).Apply(d)
}

// unlevel is the inverse of level, producing a world-space point from a
// point expressed in the ellipse's own axis frame.
func (e XYRRT) unlevel(d Point) Point {
	return e.C.Add(Rotate(e.T).Apply(d))
}

// AtY returns the (up to two) x-crossings of the rotated ellipse at
// height y, by solving the quadratic obtained from substituting the
// rotated-ellipse equation at fixed y (spec §4.2/§4.3).
func (e XYRRT) AtY(y Num) []Num {
	ca, sa := e.T.Cos(), e.T.Sin()
	dy := y.Sub(e.C.Y)

	rx2 := e.Rx.Mul(e.Rx)
	ry2 := e.Ry.Mul(e.Ry)

	// y-extent of the rotated ellipse: cy +/- sqrt(rx^2 sin^2 t + ry^2 cos^2 t).
	yHalf := rx2.Mul(sa).Mul(sa).Add(ry2.Mul(ca).Mul(ca)).Sqrt()
	ymin, ymax := e.C.Y.Sub(yHalf).Val(), e.C.Y.Add(yHalf).Val()
	if y.Val() < ymin || y.Val() >= ymax {
		return nil
	}

	// A*dx^2 + B*dx + C = 0, from substituting the rotated-ellipse
	// equation at fixed y and solving for dx = x - cx.
	invRx2 := rx2.Like(1).Div(rx2)
	invRy2 := ry2.Like(1).Div(ry2)

	A := ca.Mul(ca).Mul(invRx2).Add(sa.Mul(sa).Mul(invRy2))
	B := dy.Mul(ca).Mul(sa).Mul(invRx2.Sub(invRy2)).Mul(A.Like(2))
	C := dy.Mul(dy).Mul(sa.Mul(sa).Mul(invRx2).Add(ca.Mul(ca).Mul(invRy2))).Sub(A.Like(1))

	disc := B.Mul(B).Sub(A.Like(4).Mul(A).Mul(C))
	if disc.Val() < 0 {
		disc = disc.Like(0)
	}
	root := disc.Sqrt()
	twoA := A.Like(2).Mul(A)
	dx1 := B.Neg().Sub(root).Div(twoA)
	dx2 := B.Neg().Add(root).Div(twoA)
	return []Num{e.C.X.Add(dx1), e.C.X.Add(dx2)}
}

// BoundaryCoord returns the parametric angle of p in the ellipse's own
// (unrotated) axis frame.
func (e XYRRT) BoundaryCoord(p Point) float64 {
	d := e.level(p)
	u := d.X.Val() / e.Rx.Val()
	v := d.Y.Val() / e.Ry.Val()
	return math.Atan2(v, u)
}

// BoundaryPoint returns the point on the ellipse at parametric angle coord.
func (e XYRRT) BoundaryPoint(coord float64) Point {
	cosT, sinT := e.C.X.Like(math.Cos(coord)), e.C.X.Like(math.Sin(coord))
	d := Point{e.Rx.Mul(cosT), e.Ry.Mul(sinT)}
	return e.unlevel(d)
}

// BoundaryMidpoint returns the point at the parametric-angle midpoint.
func (e XYRRT) BoundaryMidpoint(c0, c1 float64) Point {
	return e.BoundaryPoint(midAngle(c0, c1))
}

// Contains reports whether p is inside or on the ellipse.
func (e XYRRT) Contains(p Point) bool {
	d := e.level(p)
	u := d.X.Val() / e.Rx.Val()
	v := d.Y.Val() / e.Ry.Val()
	return u*u+v*v <= 1
}

// Projection returns the canonical projection mapping e onto the unit
// circle: translate to the origin, rotate by -t to level it, then scale
// components by (1/rx,1/ry).
func (e XYRRT) Projection() Projection {
	return Projection{
		Translate(e.C.X.Neg(), e.C.Y.Neg()),
		Rotate(e.T.Neg()),
		ScaleXY(e.Rx.Like(1).Div(e.Rx), e.Ry.Like(1).Div(e.Ry)),
	}
}

// Transform applies t to e. ScaleXY on an already-rotated ellipse is an
// approximation: it scales rx/ry in the ellipse's own frame, which is
// exact only when sx==sy or t is a multiple of pi.
func (e XYRRT) Transform(t Transform) Shape {
	switch t.Kind {
	case TransformTranslate:
		return XYRRT{C: t.Apply(e.C), Rx: e.Rx, Ry: e.Ry, T: e.T}
	case TransformScale:
		return XYRRT{C: t.Apply(e.C), Rx: e.Rx.Mul(t.S), Ry: e.Ry.Mul(t.S), T: e.T}
	case TransformScaleXY:
		return XYRRT{C: t.Apply(e.C), Rx: e.Rx.Mul(t.Sx), Ry: e.Ry.Mul(t.Sy), T: e.T}
	case TransformRotate:
		return XYRRT{C: t.Apply(e.C), Rx: e.Rx, Ry: e.Ry, T: e.T.Add(t.Theta)}
	}
	panic("apvd: unknown transform kind")
}
