package apvd

import "math"

// tangentEps is the boundary-coordinate step used to estimate a travel
// direction numerically, rather than carrying a symbolic derivative of
// every shape's boundary parametrization (spec §4.4).
const tangentEps = 1e-6

// Segment is a directed traversal of an Edge: Forward walks Node0->Node1
// (increasing boundary coordinate), the reverse walks Node1->Node0.
// Region discovery (spec §4.4 step 6) consumes every Segment exactly
// once.
type Segment struct {
	Edge    EdgeID
	Forward bool
}

func (s Segment) reverse() Segment { return Segment{s.Edge, !s.Forward} }

func (c *Component) segStart(s Segment) NodeID {
	e := c.Edges[s.Edge]
	if s.Forward {
		return e.Node0
	}
	return e.Node1
}

func (c *Component) segEnd(s Segment) NodeID {
	e := c.Edges[s.Edge]
	if s.Forward {
		return e.Node1
	}
	return e.Node0
}

// startTangent estimates the direction of travel leaving the start node
// of s.
func (c *Component) startTangent(s Segment) Point {
	e := c.Edges[s.Edge]
	host := c.Shapes[e.Shape]
	at, after := e.C0, e.C0+tangentEps
	if !s.Forward {
		at, after = e.C1, e.C1-tangentEps
	}
	return host.BoundaryPoint(after).Sub(host.BoundaryPoint(at))
}

// endTangent estimates the direction of travel arriving at the end node
// of s.
func (c *Component) endTangent(s Segment) Point {
	e := c.Edges[s.Edge]
	host := c.Shapes[e.Shape]
	at, before := e.C1, e.C1-tangentEps
	if !s.Forward {
		at, before = e.C0, e.C0+tangentEps
	}
	return host.BoundaryPoint(at).Sub(host.BoundaryPoint(before))
}

func angleOf(p Point) float64 { return math.Atan2(p.Y.Val(), p.X.Val()) }

func normAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

// incidentSegments returns every segment that starts at node n.
func (c *Component) incidentSegments(n NodeID) []Segment {
	var out []Segment
	for _, eid := range c.Nodes[n].Edges {
		e := c.Edges[eid]
		if e.Node0 == n {
			out = append(out, Segment{eid, true})
		}
		if e.Node1 == n {
			out = append(out, Segment{eid, false})
		}
	}
	return out
}

// chooseNext picks the segment leaving cur's end node whose outgoing
// tangent is the clockwise-next one from cur's reversed arrival tangent
// (spec §4.4 step 6), the standard planar-subdivision face-tracing rule.
// It falls back to retracing cur's own edge in reverse when that is the
// only segment available at the node (an isolated shape's single edge).
func (c *Component) chooseNext(cur Segment) Segment {
	node := c.segEnd(cur)
	ref := normAngle(angleOf(c.endTangent(cur)) + math.Pi)
	revCur := cur.reverse()

	cands := c.incidentSegments(node)
	best := revCur
	bestOffset := math.Inf(1)
	found := false
	for _, cand := range cands {
		if cand == revCur && len(cands) > 1 {
			continue
		}
		offset := normAngle(ref - angleOf(c.startTangent(cand)))
		if offset < 1e-9 {
			offset += 2 * math.Pi
		}
		if offset < bestOffset {
			bestOffset, best, found = offset, cand, true
		}
	}
	if !found {
		return revCur
	}
	return best
}
