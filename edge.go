package apvd

// EdgeID indexes into Component.Edges.
type EdgeID int

// Edge is one arc of a shape's boundary lying between two consecutive
// nodes (spec §3.4). C0 and C1 are the host shape's own boundary
// coordinates of Node0 and Node1; C1 < C0 signals that the arc wraps
// through the coordinate domain's periodic origin, the same convention
// BoundaryMidpoint uses.
type Edge struct {
	ID           EdgeID
	Shape        int // index into Component.Shapes / Scene.Shapes
	Node0, Node1 NodeID
	C0, C1       float64
	Contains     map[int]bool // other in-component shape indices whose interior contains this edge
}

// IsBoundary reports whether no other in-component shape contains this
// edge (spec §4.4 step 5): the edge then borders its component's exterior.
func (e Edge) IsBoundary() bool { return len(e.Contains) == 0 }

// classifyEdge tests a single interior point of the arc (the host's
// BoundaryMidpoint of c0,c1) against every other shape in the component, the minimal test
// spec §4.4 step 5 calls for instead of walking the whole arc.
func classifyEdge(host Shape, others map[int]Shape, hostIdx int, c0, c1 float64) map[int]bool {
	mid := host.BoundaryMidpoint(c0, c1)
	set := map[int]bool{}
	for idx, s := range others {
		if idx == hostIdx {
			continue
		}
		if s.Contains(mid) {
			set[idx] = true
		}
	}
	return set
}
