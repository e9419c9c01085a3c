package apvd

import "math"

// Polygon is a simple (possibly concave) polygon of k>=3 vertices
// (spec §3.2). Self-crossing polygons are not rejected outright; they
// are discouraged by SelfIntersectionPenalty (spec §4.2, §4.7).
type Polygon struct {
	Verts []Point
}

// NewPolygon returns a polygon with the given vertices, in order.
func NewPolygon(verts []Point) Polygon { return Polygon{Verts: verts} }

// Kind returns ShapePolygon.
func (p Polygon) Kind() ShapeKind { return ShapePolygon }

// NumCoords returns 2*len(Verts).
func (p Polygon) NumCoords() int { return 2 * len(p.Verts) }

func (p Polygon) k() int { return len(p.Verts) }

func (p Polygon) vert(i int) Point {
	n := p.k()
	return p.Verts[((i%n)+n)%n]
}

// signedArea returns the shoelace signed area (positive for
// counter-clockwise vertex order).
func (p Polygon) signedArea() Num {
	n := p.k()
	sum := p.Verts[0].X.Like(0)
	for i := 0; i < n; i++ {
		a, b := p.vert(i), p.vert(i+1)
		sum = sum.Add(a.X.Mul(b.Y)).Sub(b.X.Mul(a.Y))
	}
	return sum.Div(sum.Like(2))
}

// Area returns the unsigned (absolute) shoelace area.
func (p Polygon) Area() Num { return p.signedArea().Abs() }

// Center returns the polygon's centroid (area-weighted).
func (p Polygon) Center() Point {
	n := p.k()
	a := p.signedArea()
	cx, cy := p.Verts[0].X.Like(0), p.Verts[0].Y.Like(0)
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		cross := v0.X.Mul(v1.Y).Sub(v1.X.Mul(v0.Y))
		cx = cx.Add(v0.X.Add(v1.X).Mul(cross))
		cy = cy.Add(v0.Y.Add(v1.Y).Mul(cross))
	}
	denom := a.Mul(a.Like(6))
	return Point{cx.Div(denom), cy.Div(denom)}
}

// AtY returns the x-crossings of the polygon's boundary at height y.
// Horizontal edges are skipped; each edge's y-span is treated as the
// half-open interval [ymin,ymax) so a shared vertex is never counted by
// both of its edges (spec §4.2).
func (p Polygon) AtY(y Num) []Num {
	var xs []Num
	n := p.k()
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		if v0.Y.Val() == v1.Y.Val() {
			continue
		}
		ymin, ymax := v0.Y.Val(), v1.Y.Val()
		if ymin > ymax {
			ymin, ymax = ymax, ymin
		}
		if y.Val() < ymin || y.Val() >= ymax {
			continue
		}
		t := y.Sub(v0.Y).Div(v1.Y.Sub(v0.Y))
		x := v0.X.Add(t.Mul(v1.X.Sub(v0.X)))
		xs = append(xs, x)
	}
	return xs
}

// BoundaryCoord returns edgeIndex+t for the point on the polygon's
// boundary nearest p, t in [0,1).
func (p Polygon) BoundaryCoord(pt Point) float64 {
	n := p.k()
	best, bestDist := 0, math.Inf(1)
	bestT := 0.0
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		ex, ey := v1.X.Val()-v0.X.Val(), v1.Y.Val()-v0.Y.Val()
		wx, wy := pt.X.Val()-v0.X.Val(), pt.Y.Val()-v0.Y.Val()
		elen2 := ex*ex + ey*ey
		t := 0.0
		if elen2 > 0 {
			t = (wx*ex + wy*ey) / elen2
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		px, py := v0.X.Val()+t*ex, v0.Y.Val()+t*ey
		dx, dy := pt.X.Val()-px, pt.Y.Val()-py
		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist, best, bestT = dist, i, t
		}
	}
	if bestT >= 1 {
		bestT = 1 - 1e-12
	}
	return float64(best) + bestT
}

// BoundaryPoint returns the point at edgeIndex+t along the boundary.
func (p Polygon) BoundaryPoint(coord float64) Point {
	n := p.k()
	ei := int(math.Floor(coord))
	t := coord - float64(ei)
	ei = ((ei % n) + n) % n
	v0, v1 := p.vert(ei), p.vert(ei+1)
	like := v0.X.Like(t)
	return Point{
		v0.X.Add(like.Mul(v1.X.Sub(v0.X))),
		v0.Y.Add(like.Mul(v1.Y.Sub(v0.Y))),
	}
}

// BoundaryMidpoint returns the point halfway (by perimeter parameter)
// between c0 and c1.
func (p Polygon) BoundaryMidpoint(c0, c1 float64) Point {
	n := float64(p.k())
	if c1 < c0 {
		c1 += n
	}
	mid := (c0 + c1) / 2
	if mid >= n {
		mid -= n
	}
	return p.BoundaryPoint(mid)
}

// Contains reports whether p is inside or on the polygon: a point lying
// exactly on an edge counts as contained, anything else is decided by
// ray casting.
func (p Polygon) Contains(pt Point) bool {
	n := p.k()
	inside := false
	px, py := pt.X.Val(), pt.Y.Val()
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		x0, y0 := v0.X.Val(), v0.Y.Val()
		x1, y1 := v1.X.Val(), v1.Y.Val()
		if (x1-x0)*(py-y0)-(y1-y0)*(px-x0) == 0 &&
			math.Min(x0, x1) <= px && px <= math.Max(x0, x1) &&
			math.Min(y0, y1) <= py && py <= math.Max(y0, y1) {
			return true
		}
	}
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		x0, y0 := v0.X.Val(), v0.Y.Val()
		x1, y1 := v1.X.Val(), v1.Y.Val()
		if (y0 > py) != (y1 > py) {
			xCross := x0 + (py-y0)/(y1-y0)*(x1-x0)
			if px < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Projection returns the canonical projection: translate the centroid
// to the origin (spec §3.3; there is no conic-style unit-circle form
// for a polygon).
func (p Polygon) Projection() Projection {
	c := p.Center()
	return Projection{Translate(c.X.Neg(), c.Y.Neg())}
}

// Transform applies t to every vertex, returning a Polygon.
func (p Polygon) Transform(t Transform) Shape {
	out := make([]Point, p.k())
	for i, v := range p.Verts {
		out[i] = t.Apply(v)
	}
	return Polygon{Verts: out}
}

// PolyUnitHit is one intersection of a polygon edge with the unit
// circle, expressed in whatever frame the polygon was given in (spec
// §4.2's unit_intersections, typically called after projecting the
// polygon into a conic's canonical frame).
type PolyUnitHit struct {
	EdgeIndex int
	T         float64
	P         Point
}

// UnitIntersections returns every intersection of p's edges with the
// unit circle, via the segment-circle quadratic.
func (p Polygon) UnitIntersections() []PolyUnitHit {
	var hits []PolyUnitHit
	n := p.k()
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		dx, dy := v1.X.Val()-v0.X.Val(), v1.Y.Val()-v0.Y.Val()
		fx, fy := v0.X.Val(), v0.Y.Val()

		a := dx*dx + dy*dy
		b := 2 * (fx*dx + fy*dy)
		c := fx*fx + fy*fy - 1
		disc := b*b - 4*a*c
		if disc < 0 || a == 0 {
			continue
		}
		sq := math.Sqrt(disc)
		for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
			if t < 0 || t > 1 {
				continue
			}
			hits = append(hits, PolyUnitHit{
				EdgeIndex: i,
				T:         t,
				P:         Point{v0.X.Like(fx + t*dx), v0.Y.Like(fy + t*dy)},
			})
		}
	}
	return hits
}

// orient2D returns the signed area of triangle (a,b,c); its sign gives
// the orientation of the turn a->b->c. Used only for the crosses/no-crosses
// branch test, a non-differentiable decision the rest of the package also
// makes on plain floats (e.g. AtY's half-open interval checks).
func orient2D(a, b, c Point) float64 {
	return (b.X.Val()-a.X.Val())*(c.Y.Val()-a.Y.Val()) - (b.Y.Val()-a.Y.Val())*(c.X.Val()-a.X.Val())
}

// orient2DNum is orient2D's Num-space twin, carrying whatever gradient
// a,b,c carry, for the magnitude this penalty actually reports.
func orient2DNum(a, b, c Point) Num {
	return b.X.Sub(a.X).Mul(c.Y.Sub(a.Y)).Sub(b.Y.Sub(a.Y).Mul(c.X.Sub(a.X)))
}

func segmentsCross(p1, p2, p3, p4 Point) (bool, [4]float64) {
	d1 := orient2D(p3, p4, p1)
	d2 := orient2D(p3, p4, p2)
	d3 := orient2D(p1, p2, p3)
	d4 := orient2D(p1, p2, p4)
	crosses := ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
	return crosses, [4]float64{d1, d2, d3, d4}
}

// SelfIntersectionPenalty sums, over every pair of non-adjacent edges
// that cross, the minimum of the four triangle-orientation determinants
// (spec §4.2). The loss layer (spec §4.7) applies a weight of 10 to this
// value when folding it into the gradient. The crosses/doesn't-cross
// branch is decided on plain floats (segmentsCross), but the reported
// magnitude is recomputed in Num space so its gradient actually steers
// the offending vertices apart instead of reporting a frozen constant.
func (p Polygon) SelfIntersectionPenalty() Num {
	n := p.k()
	total := p.Verts[0].X.Like(0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share a vertex
			}
			a0, a1 := p.vert(i), p.vert(i+1)
			b0, b1 := p.vert(j), p.vert(j+1)
			crosses, d := segmentsCross(a0, a1, b0, b1)
			if !crosses {
				continue
			}
			dNum := [4]Num{
				orient2DNum(b0, b1, a0),
				orient2DNum(b0, b1, a1),
				orient2DNum(a0, a1, b0),
				orient2DNum(a0, a1, b1),
			}
			m := dNum[0].Abs()
			for _, v := range dNum[1:] {
				av := v.Abs()
				if av.Val() < m.Val() {
					m = av
				}
			}
			_ = d // float magnitudes only drove the branch decision above
			total = total.Add(m)
		}
	}
	return total
}

// RegularityPenalty returns the variance of edge lengths plus, for each
// concave corner (negative cross product of incident edges), a
// -0.1*cross term (spec §4.2). The loss layer applies a weight of 0.01.
func (p Polygon) RegularityPenalty() Num {
	n := p.k()
	lens := make([]Num, n)
	mean := p.Verts[0].X.Like(0)
	for i := 0; i < n; i++ {
		v0, v1 := p.vert(i), p.vert(i+1)
		lens[i] = v0.Dist(v1)
		mean = mean.Add(lens[i])
	}
	mean = mean.Div(mean.Like(float64(n)))

	variance := mean.Like(0)
	for i := 0; i < n; i++ {
		d := lens[i].Sub(mean)
		variance = variance.Add(d.Mul(d))
	}
	variance = variance.Div(variance.Like(float64(n)))

	concavity := variance.Like(0)
	for i := 0; i < n; i++ {
		prev, cur, next := p.vert(i-1), p.vert(i), p.vert(i+1)
		e1 := cur.Sub(prev)
		e2 := next.Sub(cur)
		cross := e1.Cross(e2)
		if cross.Val() < 0 {
			concavity = concavity.Sub(cross.Mul(cross.Like(0.1)))
		}
	}
	return variance.Add(concavity)
}
