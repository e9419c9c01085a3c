package apvd

import "math"

// segTolerance is the parametric slack on polygon edge-edge intersection
// tests (spec §4.3).
const segTolerance = 1e-10

func conicRank(k ShapeKind) int {
	switch k {
	case ShapeCircle:
		return 0
	case ShapeXYRR:
		return 1
	case ShapeXYRRT:
		return 2
	default:
		return 3
	}
}

// Intersect returns every intersection point of shapes a and b (spec
// §4.3). Dispatch is by rank (Circle > XYRR > XYRRT > Polygon): the
// higher-ranked shape's canonical projection maps the plane so it
// becomes the unit circle, and the lower-ranked shape's unit-circle
// intersections are computed in that frame, then mapped back.
func Intersect(a, b Shape) []Point {
	if conicRank(a.Kind()) > conicRank(b.Kind()) {
		return Intersect(b, a)
	}
	if a.Kind() == ShapePolygon && b.Kind() == ShapePolygon {
		return intersectPolyPoly(a.(Polygon), b.(Polygon))
	}
	if b.Kind() == ShapePolygon {
		return intersectConicPoly(a, b.(Polygon))
	}
	return intersectConicConic(a, b)
}

// conicCoeffs returns the general-conic coefficients A,B,C,D,E,F such
// that Ax^2+Bxy+Cy^2+Dx+Ey+F=0 describes s.
func conicCoeffs(s Shape) (a, b, c, d, e, f Num) {
	switch t := s.(type) {
	case Circle:
		cx, cy, r := t.C.X, t.C.Y, t.R
		one := r.Like(1)
		a, b, c = one, r.Like(0), one
		d, e = cx.Mul(cx.Like(-2)), cy.Mul(cy.Like(-2))
		f = cx.Mul(cx).Add(cy.Mul(cy)).Sub(r.Mul(r))
		return
	case XYRR:
		cx, cy, rx, ry := t.C.X, t.C.Y, t.Rx, t.Ry
		invRx2 := rx.Like(1).Div(rx.Mul(rx))
		invRy2 := ry.Like(1).Div(ry.Mul(ry))
		a, c = invRx2, invRy2
		b = rx.Like(0)
		d = cx.Mul(invRx2).Mul(cx.Like(-2))
		e = cy.Mul(invRy2).Mul(cy.Like(-2))
		f = cx.Mul(cx).Mul(invRx2).Add(cy.Mul(cy).Mul(invRy2)).Sub(invRx2.Like(1))
		return
	case XYRRT:
		cx, cy, rx, ry, theta := t.C.X, t.C.Y, t.Rx, t.Ry, t.T
		ca, sa := theta.Cos(), theta.Sin()
		invRx2 := rx.Like(1).Div(rx.Mul(rx))
		invRy2 := ry.Like(1).Div(ry.Mul(ry))
		p := ca.Mul(ca).Mul(invRx2).Add(sa.Mul(sa).Mul(invRy2))
		q := sa.Mul(sa).Mul(invRx2).Add(ca.Mul(ca).Mul(invRy2))
		r := ca.Mul(sa).Mul(invRx2.Sub(invRy2)).Mul(ca.Like(2))
		a, b, c = p, r, q
		d = p.Mul(cx).Mul(cx.Like(-2)).Sub(r.Mul(cy))
		e = q.Mul(cy).Mul(cy.Like(-2)).Sub(r.Mul(cx))
		f = p.Mul(cx).Mul(cx).Add(q.Mul(cy).Mul(cy)).Add(r.Mul(cx).Mul(cy)).Sub(p.Like(1))
		return
	}
	panic("apvd: conicCoeffs called on a non-conic shape")
}

// intersectConicConic projects b into a's canonical (unit-circle) frame,
// substitutes the Weierstrass parametrization x=(1-t^2)/(1+t^2),
// y=2t/(1+t^2) into b's general-conic equation to get a monic quartic
// in t, solves it, and maps the resulting unit-circle points back to
// world space.
func intersectConicConic(a, b Shape) []Point {
	proj := a.Projection()
	bp := applyProjection(proj, b)

	A, B, C, D, E, F := conicCoeffs(bp)

	// Expand A(1-t^2)^2 + B(1-t^2)(2t) + C(2t)^2 + D(1-t^2)(1+t^2) +
	// E(2t)(1+t^2) + F(1+t^2)^2 = 0.
	a4 := A.Sub(D).Add(F)
	a3 := E.Sub(B).Mul(B.Like(2))
	a2 := A.Neg().Mul(A.Like(2)).Add(C.Mul(C.Like(4))).Add(F.Mul(F.Like(2)))
	a1 := B.Add(E).Mul(B.Like(2))
	a0 := A.Add(D).Add(F)

	var pts []Point
	if math.Abs(a4.Val()) > 1e-12 {
		a3n, a2n, a1n, a0n := a3.Div(a4), a2.Div(a4), a1.Div(a4), a0.Div(a4)
		for _, t := range QuarticRoots(a3n, a2n, a1n, a0n) {
			pts = append(pts, weierstrassPoint(t))
		}
	} else {
		// t -> infinity corresponds to theta=pi, i.e. the point (-1,0).
		pts = append(pts, Point{a4.Like(-1), a4.Like(0)})
	}

	inv := proj.Invert()
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = inv.Apply(p)
	}
	return out
}

func weierstrassPoint(t Num) Point {
	t2 := t.Mul(t)
	denom := t2.Like(1).Add(t2)
	x := t2.Like(1).Sub(t2).Div(denom)
	y := t.Mul(t.Like(2)).Div(denom)
	return snapToUnitCircle(x, y)
}

// snapToUnitCircle re-derives the weaker of x,y from the stronger one
// when the pair drifts off the unit circle by more than 1e-3 (spec
// §4.3's numerical-robustness step).
func snapToUnitCircle(x, y Num) Point {
	r2 := x.Mul(x).Add(y.Mul(y))
	if math.Abs(1-r2.Val()) <= 1e-3 {
		return Point{x, y}
	}
	if math.Abs(x.Val()) >= math.Abs(y.Val()) {
		rest := x.Like(1).Sub(x.Mul(x))
		if rest.Val() < 0 {
			rest = rest.Like(0)
		}
		ny := rest.Sqrt()
		if y.Val() < 0 {
			ny = ny.Neg()
		}
		return Point{x, ny}
	}
	rest := y.Like(1).Sub(y.Mul(y))
	if rest.Val() < 0 {
		rest = rest.Like(0)
	}
	nx := rest.Sqrt()
	if x.Val() < 0 {
		nx = nx.Neg()
	}
	return Point{nx, y}
}

// applyProjection transforms shape s through every Transform of proj,
// in order.
func applyProjection(proj Projection, s Shape) Shape {
	for _, t := range proj {
		s = s.Transform(t)
	}
	return s
}

// intersectConicPoly projects poly into conic's canonical frame and
// intersects each edge with the unit circle (spec §4.3's "Polygon ∩
// conic").
func intersectConicPoly(conic Shape, poly Polygon) []Point {
	proj := conic.Projection()
	pp := applyProjection(proj, poly).(Polygon)
	hits := pp.UnitIntersections()
	inv := proj.Invert()
	out := make([]Point, len(hits))
	for i, h := range hits {
		out[i] = inv.Apply(h.P)
	}
	return out
}

// intersectPolyPoly tests every pair of edges via 2D parametric
// line-line intersection, with boundary tolerance segTolerance on
// s,t in [-eps, 1+eps] (spec §4.3).
func intersectPolyPoly(a, b Polygon) []Point {
	var out []Point
	na, nb := a.k(), b.k()
	for i := 0; i < na; i++ {
		p, r := a.vert(i), a.vert(i+1).Sub(a.vert(i))
		for j := 0; j < nb; j++ {
			q, s := b.vert(j), b.vert(j+1).Sub(b.vert(j))
			denom := r.Cross(s).Val()
			if math.Abs(denom) < 1e-12 {
				continue // parallel or collinear: spec says report no intersection
			}
			qp := q.Sub(p)
			t := qp.Cross(s).Val() / denom
			u := qp.Cross(r).Val() / denom
			if t < -segTolerance || t > 1+segTolerance || u < -segTolerance || u > 1+segTolerance {
				continue
			}
			out = append(out, p.Add(r.Scale(p.X.Like(t))))
		}
	}
	return out
}
