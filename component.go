package apvd

import assert "github.com/aurelien-rainone/assertgo"

// Component is a maximal set of shapes connected, directly or
// transitively, by at least one boundary intersection (spec §3.4). A
// shape with no intersections at all is its own singleton Component with
// no Nodes or Edges; its single Region is its own interior.
type Component struct {
	Shapes map[int]Shape // global shape index -> shape
	Nodes  []Node
	Edges  []Edge

	// Ancestors are shape indices, in OTHER components, whose interior
	// fully contains this whole component — a non-intersecting nesting,
	// since by the union-find grouping no shape here intersects any
	// shape outside it (spec §4.4 step 4). Filled by Scene.linkContainment.
	Ancestors map[int]bool
	// Parent is the index into Scene.Components of the innermost
	// ancestor shape's owning component, or -1 if this component isn't
	// nested in anything (spec §4.4 step 8).
	Parent int
	// Depth is 0 for an unnested component, one more than its parent's
	// otherwise (spec §4.4 step 9).
	Depth int
	// Children lists the component indices whose direct Parent is this
	// component.
	Children []int
}

func (c *Component) addNode(p Point, coord map[int]float64) NodeID {
	id := NodeID(len(c.Nodes))
	c.Nodes = append(c.Nodes, Node{ID: id, P: p, Coord: coord})
	return id
}

func (c *Component) addEdge(shapeIdx int, n0, n1 NodeID, c0, c1 float64, contains map[int]bool) EdgeID {
	assert.True(int(n0) < len(c.Nodes) && int(n1) < len(c.Nodes),
		"addEdge: node index out of range (n0=%d, n1=%d, have %d nodes)", n0, n1, len(c.Nodes))
	id := EdgeID(len(c.Edges))
	c.Edges = append(c.Edges, Edge{ID: id, Shape: shapeIdx, Node0: n0, Node1: n1, C0: c0, C1: c1, Contains: contains})
	c.Nodes[n0].Edges = append(c.Nodes[n0].Edges, id)
	if n1 != n0 {
		c.Nodes[n1].Edges = append(c.Nodes[n1].Edges, id)
	}
	return id
}

// soleShape returns the component's one shape index when it has exactly
// one member (the no-intersections case).
func (c *Component) soleShape() (int, bool) {
	if len(c.Shapes) != 1 {
		return 0, false
	}
	for idx := range c.Shapes {
		return idx, true
	}
	return 0, false
}
