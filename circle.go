package apvd

import "math"

// Circle is a circle: center + radius (spec §3.2).
type Circle struct {
	C Point
	R Num
}

// NewCircle returns a circle centered at (cx,cy) with radius r.
func NewCircle(cx, cy, r Num) Circle { return Circle{C: Point{cx, cy}, R: r} }

// Kind returns ShapeCircle.
func (c Circle) Kind() ShapeKind { return ShapeCircle }

// NumCoords returns 3 (cx, cy, r).
func (c Circle) NumCoords() int { return 3 }

// Center returns the circle's center.
func (c Circle) Center() Point { return c.C }

// Area returns pi*r^2.
func (c Circle) Area() Num { return c.R.Like(math.Pi).Mul(c.R).Mul(c.R) }

// AtY returns the (up to two) x-crossings of the circle at height y.
func (c Circle) AtY(y Num) []Num {
	ymin, ymax := c.C.Y.Sub(c.R).Val(), c.C.Y.Add(c.R).Val()
	if y.Val() < ymin || y.Val() >= ymax {
		return nil
	}
	dy := y.Sub(c.C.Y)
	disc := c.R.Mul(c.R).Sub(dy.Mul(dy))
	if disc.Val() < 0 {
		disc = disc.Like(0)
	}
	root := disc.Sqrt()
	return []Num{c.C.X.Sub(root), c.C.X.Add(root)}
}

// BoundaryCoord returns the angle of p around the circle, in math.Atan2's
// range (-pi,pi]; a point straight left of the center gets +pi.
func (c Circle) BoundaryCoord(p Point) float64 {
	return math.Atan2(p.Y.Val()-c.C.Y.Val(), p.X.Val()-c.C.X.Val())
}

// BoundaryPoint returns the point on the circle at angle coord.
func (c Circle) BoundaryPoint(coord float64) Point {
	cosT, sinT := c.C.X.Like(math.Cos(coord)), c.C.X.Like(math.Sin(coord))
	return Point{
		c.C.X.Add(c.R.Mul(cosT)),
		c.C.Y.Add(c.R.Mul(sinT)),
	}
}

// BoundaryMidpoint returns the point at the angular midpoint of c0 and c1.
func (c Circle) BoundaryMidpoint(c0, c1 float64) Point {
	return c.BoundaryPoint(midAngle(c0, c1))
}

// midAngle returns the angle halfway from c0 to c1 travelling in the
// direction of increasing angle (handling wraparound at +-pi).
func midAngle(c0, c1 float64) float64 {
	if c1 < c0 {
		c1 += 2 * math.Pi
	}
	return wrapAngle((c0 + c1) / 2)
}

// Contains reports whether p is inside or on the circle.
func (c Circle) Contains(p Point) bool {
	dx, dy, r := p.X.Val()-c.C.X.Val(), p.Y.Val()-c.C.Y.Val(), c.R.Val()
	return dx*dx+dy*dy <= r*r
}

// Projection returns the canonical projection mapping c onto the unit
// circle: translate to the origin, then scale by 1/r.
func (c Circle) Projection() Projection {
	return Projection{
		Translate(c.C.X.Neg(), c.C.Y.Neg()),
		Scale(c.R.Like(1).Div(c.R)),
	}
}

// Transform applies t, returning a Circle unless t scales non-uniformly
// (ScaleXY), in which case it returns an XYRR.
func (c Circle) Transform(t Transform) Shape {
	switch t.Kind {
	case TransformTranslate, TransformRotate:
		return Circle{C: t.Apply(c.C), R: c.R}
	case TransformScale:
		return Circle{C: t.Apply(c.C), R: c.R.Mul(t.S)}
	case TransformScaleXY:
		return XYRR{C: t.Apply(c.C), Rx: c.R.Mul(t.Sx), Ry: c.R.Mul(t.Sy)}
	}
	panic("apvd: unknown transform kind")
}
