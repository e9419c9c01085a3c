package apvd

import "math"

// Scene is the planar subdivision induced by a set of shapes (spec §3.4,
// §4.4): every shape pairwise-intersected, the intersection points
// merged into nodes, shapes grouped into components by connectivity, and
// each component's boundary arcs traced into regions.
type Scene struct {
	Shapes     []Shape
	Components []Component
	Regions    []Region
}

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

type hitCluster struct {
	P      Point
	Shapes map[int]bool
}

func pointDist(a, b Point) float64 {
	dx, dy := a.X.Val()-b.X.Val(), a.Y.Val()-b.Y.Val()
	return math.Sqrt(dx*dx + dy*dy)
}

// NewScene builds the Scene for shapes (spec §4.4). Shapes that never
// intersect anything each become their own single-region Component.
func NewScene(shapes []Shape) (*Scene, error) {
	n := len(shapes)
	uf := newUnionFind(n)
	var clusters []*hitCluster

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, p := range Intersect(shapes[i], shapes[j]) {
				var cl *hitCluster
				for _, cand := range clusters {
					if pointDist(cand.P, p) < mergeThreshold {
						cl = cand
						break
					}
				}
				if cl == nil {
					cl = &hitCluster{P: p, Shapes: map[int]bool{}}
					clusters = append(clusters, cl)
				}
				cl.Shapes[i] = true
				cl.Shapes[j] = true
				uf.union(i, j)
			}
		}
	}

	groups := map[int][]int{}
	for i := 0; i < n; i++ {
		r := uf.find(i)
		groups[r] = append(groups[r], i)
	}

	sc := &Scene{Shapes: shapes}
	for _, group := range groups {
		if len(group) == 1 {
			idx := group[0]
			comp := Component{Shapes: map[int]Shape{idx: shapes[idx]}}
			compIdx := len(sc.Components)
			sc.Components = append(sc.Components, comp)
			sc.Regions = append(sc.Regions, Region{
				ID:        len(sc.Regions),
				Component: compIdx,
				Key:       makeRegionKey(n, map[int]bool{idx: true}),
				Area:      shapes[idx].Area(),
			})
			continue
		}
		comp, regions, err := buildComponent(shapes, group, clusters, n)
		if err != nil {
			return nil, err
		}
		compIdx := len(sc.Components)
		sc.Components = append(sc.Components, *comp)
		for i := range regions {
			regions[i].ID = len(sc.Regions)
			regions[i].Component = compIdx
			sc.Regions = append(sc.Regions, regions[i])
		}
	}
	sc.linkContainment()
	return sc, nil
}

func buildComponent(shapes []Shape, group []int, clusters []*hitCluster, nShapes int) (*Component, []Region, error) {
	inGroup := map[int]bool{}
	for _, idx := range group {
		inGroup[idx] = true
	}
	comp := &Component{Shapes: map[int]Shape{}}
	for _, idx := range group {
		comp.Shapes[idx] = shapes[idx]
	}

	for _, cl := range clusters {
		touches := false
		for idx := range cl.Shapes {
			if inGroup[idx] {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		coord := map[int]float64{}
		for idx := range cl.Shapes {
			if inGroup[idx] {
				coord[idx] = shapes[idx].BoundaryCoord(cl.P)
			}
		}
		comp.addNode(cl.P, coord)
	}

	for _, idx := range group {
		var nodes []NodeID
		for _, nd := range comp.Nodes {
			if _, ok := nd.Coord[idx]; ok {
				nodes = append(nodes, nd.ID)
			}
		}
		if len(nodes) == 0 {
			continue
		}
		sortNodesByCoord(comp, idx, nodes)
		for k := 0; k < len(nodes); k++ {
			n0 := nodes[k]
			n1 := nodes[(k+1)%len(nodes)]
			c0 := comp.Nodes[n0].Coord[idx]
			c1 := comp.Nodes[n1].Coord[idx]
			contains := classifyEdge(shapes[idx], comp.Shapes, idx, c0, c1)
			comp.addEdge(idx, n0, n1, c0, c1, contains)
		}
	}

	loops, err := traceRegions(comp)
	if err != nil {
		return nil, nil, err
	}

	internalCount, boundaryCount := 0, 0
	for _, e := range comp.Edges {
		if e.IsBoundary() {
			boundaryCount++
		} else {
			internalCount++
		}
	}
	expectedVisits := 2*internalCount + boundaryCount

	var regions []Region
	actualVisits := 0
	for _, loop := range loops {
		if straightShoelace(comp, loop) <= 0 {
			continue // unbounded or degenerate face
		}
		if !acceptableLoop(comp, loop) {
			continue
		}
		actualVisits += len(loop)
		key := regionKeyFromLoop(comp, loop)
		regions = append(regions, Region{
			Key:  makeRegionKey(nShapes, key),
			Loop: loop,
			Area: RegionArea(comp, loop),
		})
	}
	// Every directed segment belongs to exactly one loop; a valid planar
	// subdivision's bounded faces visit each internal edge from both
	// sides and each boundary edge from its one interior-facing side
	// (spec §4.4). A mismatch means chooseNext produced an inconsistent
	// topology rather than a clean set of faces.
	if actualVisits != expectedVisits {
		return nil, nil, &SceneError{
			Reason:         "region visit count mismatch",
			ExpectedVisits: expectedVisits,
			ActualVisits:   actualVisits,
		}
	}
	return comp, regions, nil
}

func sortNodesByCoord(c *Component, shapeIdx int, nodes []NodeID) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && c.Nodes[nodes[j-1]].Coord[shapeIdx] > c.Nodes[nodes[j]].Coord[shapeIdx]; j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

// traceRegions walks every undirected edge's two directed segments,
// each exactly once, via chooseNext's clockwise-turn rule (spec §4.4
// step 6).
func traceRegions(c *Component) ([][]Segment, error) {
	visited := map[Segment]bool{}
	var loops [][]Segment

	for e := range c.Edges {
		for _, fwd := range [2]bool{true, false} {
			seed := Segment{EdgeID(e), fwd}
			if visited[seed] {
				continue
			}
			var loop []Segment
			cur := seed
			for steps := 0; ; steps++ {
				if steps > 4*len(c.Edges)+4 {
					return nil, &SceneError{Reason: "region traversal failed to close"}
				}
				visited[cur] = true
				loop = append(loop, cur)
				next := c.chooseNext(cur)
				if next == seed {
					break
				}
				cur = next
			}
			loops = append(loops, loop)
		}
	}
	return loops, nil
}
