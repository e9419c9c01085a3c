package apvd

import "math"

// RegionArea computes a region's area from its bounding loop via Green's
// theorem: each segment contributes 0.5*(x dy - y dx) along its host's
// own parametrization, summed and taken in absolute value (spec §4.5).
// Every contribution is expressed in terms of the segment's endpoint
// node positions (Duals carrying the intersection-point gradient), never
// by sampling and triangulating the arc.
func RegionArea(c *Component, loop []Segment) Num {
	zero := c.Nodes[0].P.X.Like(0)
	total := zero
	for _, seg := range loop {
		e := c.Edges[seg.Edge]
		host := c.Shapes[e.Shape]
		p0, p1 := c.Nodes[e.Node0].P, c.Nodes[e.Node1].P
		var term Num
		if poly, ok := host.(Polygon); ok {
			term = polygonArcTerm(poly, e.C0, e.C1, p0, p1, zero)
		} else {
			term = conicArcTerm(host, e.C0, e.C1, p0, p1)
		}
		if !seg.Forward {
			term = term.Neg()
		}
		total = total.Add(term)
	}
	return total.Abs()
}

// polygonArcTerm is the shoelace contribution of a region edge whose
// host is a Polygon: the chord p0->p1 plus every polygon vertex whose
// own boundary coordinate lies strictly between c0 and c1 (spec §4.5
// item 2). Scene edges run between consecutive intersection nodes, so a
// region boundary routinely passes several polygon corners between two
// nodes; omitting them understates or overstates every multi-corner
// region's area.
func polygonArcTerm(poly Polygon, c0, c1 float64, p0, p1 Point, zero Num) Num {
	n := poly.k()
	c1w := c1
	if c1w < c0 {
		c1w += float64(n)
	}

	pts := []Point{p0}
	start := int(math.Ceil(c0))
	if float64(start) == c0 {
		start++ // c0 already names a vertex, carried by p0 itself
	}
	for idx := start; float64(idx) < c1w; idx++ {
		pts = append(pts, poly.vert(idx))
	}
	pts = append(pts, p1)

	sum := zero
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		sum = sum.Add(a.X.Mul(b.Y)).Sub(b.X.Mul(a.Y))
	}
	return sum.Div(sum.Like(2))
}

// conicAngleNum is a conic host's boundary angle at p, computed in Num
// space so the result carries whatever gradient p (an intersection
// node) and the shape's own parameters carry — the Num-space twin of
// each conic's BoundaryCoord, which only ever returns a frozen float
// (spec §4.5 item 2).
func conicAngleNum(host Shape, p Point) Num {
	switch t := host.(type) {
	case Circle:
		return p.Y.Sub(t.C.Y).Atan2(p.X.Sub(t.C.X))
	case XYRR:
		u := p.X.Sub(t.C.X).Div(t.Rx)
		v := p.Y.Sub(t.C.Y).Div(t.Ry)
		return v.Atan2(u)
	case XYRRT:
		d := t.level(p)
		u := d.X.Div(t.Rx)
		v := d.Y.Div(t.Ry)
		return v.Atan2(u)
	}
	panic("apvd: conicAngleNum called on a non-conic shape")
}

// conicArcTerm returns a conic arc's contribution to the Green's-theorem
// area sum, integrating the shape's own parametrization from node p0 to
// node p1. The stored float boundary coordinates c0,c1 decide only
// whether the arc wraps through the period's origin (a non-differentiable
// branch, the same convention BoundaryMidpoint uses); the span angles
// themselves come from p0,p1 so the area's gradient depends on how the
// intersection points move, not on their coordinates at trace time.
func conicArcTerm(host Shape, c0, c1 float64, p0, p1 Point) Num {
	th0 := conicAngleNum(host, p0)
	th1 := conicAngleNum(host, p1)
	if c1 < c0 {
		th1 = th1.Add(th1.Like(2 * math.Pi))
	}
	switch t := host.(type) {
	case Circle:
		return circleArcTerm(t, th0, th1)
	case XYRR:
		return xyrrArcTerm(t, th0, th1)
	case XYRRT:
		return xyrrtArcTerm(t, th0, th1)
	}
	panic("apvd: conicArcTerm called on a non-conic shape")
}

// circleArcTerm integrates x(th)=cx+r*cos(th), y(th)=cy+r*sin(th): the
// full sector term r^2*dth plus the center-offset correction.
func circleArcTerm(s Circle, th0, th1 Num) Num {
	dth := th1.Sub(th0)
	sin1, sin0 := th1.Sin(), th0.Sin()
	cos1, cos0 := th1.Cos(), th0.Cos()
	r, cx, cy := s.R, s.C.X, s.C.Y

	t1 := r.Mul(r).Mul(dth)
	t2 := r.Mul(cx).Mul(sin1.Sub(sin0))
	t3 := r.Mul(cy).Mul(cos0.Sub(cos1))
	return t1.Add(t2).Add(t3).Div(t1.Like(2))
}

// xyrrArcTerm is circleArcTerm's analog for x=cx+rx*cos(th), y=cy+ry*sin(th).
func xyrrArcTerm(s XYRR, th0, th1 Num) Num {
	dth := th1.Sub(th0)
	sin1, sin0 := th1.Sin(), th0.Sin()
	cos1, cos0 := th1.Cos(), th0.Cos()
	rx, ry, cx, cy := s.Rx, s.Ry, s.C.X, s.C.Y

	t1 := rx.Mul(ry).Mul(dth)
	t2 := cx.Mul(ry).Mul(sin1.Sub(sin0))
	t3 := cy.Mul(rx).Mul(cos0.Sub(cos1))
	return t1.Add(t2).Add(t3).Div(t1.Like(2))
}

// xyrrtArcTerm additionally folds in the constant rotation T, since the
// rotation-invariant rx*ry*dth term is unaffected by it but the
// center-offset correction picks up cross terms of sin(T),cos(T). th0,
// th1 are angles in the ellipse's own (unrotated) axis frame, matching
// conicAngleNum's XYRRT case.
func xyrrtArcTerm(s XYRRT, th0, th1 Num) Num {
	dth := th1.Sub(th0)
	sin1, sin0 := th1.Sin(), th0.Sin()
	cos1, cos0 := th1.Cos(), th0.Cos()
	rx, ry, cx, cy := s.Rx, s.Ry, s.C.X, s.C.Y
	ca, sa := s.T.Cos(), s.T.Sin()

	a := ry.Mul(cx.Mul(ca).Add(cy.Mul(sa)))
	b := rx.Mul(cy.Mul(ca).Sub(cx.Mul(sa)))
	base := rx.Mul(ry).Mul(dth)
	term := base.Add(a.Mul(sin1.Sub(sin0))).Add(b.Mul(cos0.Sub(cos1)))
	return term.Div(term.Like(2))
}
