package apvd

import (
	"math"
	"sort"
)

// representativeShape returns the smallest-index shape of a component,
// a deterministic stand-in for "a point of the component" that the
// containment test probes (spec §4.4 step 4).
func representativeShape(comp Component) int {
	best := -1
	for idx := range comp.Shapes {
		if best == -1 || idx < best {
			best = idx
		}
	}
	return best
}

// shapeOwners maps every global shape index to the Scene.Components
// index that holds it.
func shapeOwners(sc *Scene) map[int]int {
	owners := map[int]int{}
	for ci, comp := range sc.Components {
		for idx := range comp.Shapes {
			owners[idx] = ci
		}
	}
	return owners
}

// regionMatchesPoint reports whether p's containment in comp's own
// shapes matches key's digit/dash pattern at their positions — the test
// used to find exactly which of a component's own regions hosts a
// nested child (spec §4.5 item 3).
func regionMatchesPoint(sc *Scene, comp Component, key RegionKey, p Point) bool {
	for idx := range comp.Shapes {
		if idx >= len(key) {
			continue
		}
		want := key[idx] != '-'
		if sc.Shapes[idx].Contains(p) != want {
			return false
		}
	}
	return true
}

// withAncestors ORs every ancestor shape's digit into key: a region's
// whole component being nested inside ancestor shapes means every point
// in the region is also inside every one of them.
func withAncestors(key RegionKey, ancestors map[int]bool, n int) RegionKey {
	if len(ancestors) == 0 {
		return key
	}
	b := []byte(key)
	for idx := range ancestors {
		if idx >= n {
			continue
		}
		if c := idxChar(idx); c != 0 {
			b[idx] = c
		}
	}
	return RegionKey(b)
}

// linkContainment finds, for every component, which other components'
// shapes fully contain it; a two-check test (its representative shape's
// boundary_point(0) and center() both landing inside the candidate)
// rules out edge cases where the two shapes merely touch (spec §4.4
// step 4). It picks the smallest-area containing shape as the direct
// parent and assigns a nesting depth (steps 7-9), subtracts each direct
// child's total area from whichever of the parent's own regions hosts
// it (spec §4.5 item 3), and finally folds every component's ancestor
// shapes into its regions' keys so a nested region's key names every
// shape that contains it, not just its own component's.
func (sc *Scene) linkContainment() {
	n := len(sc.Components)
	for i := range sc.Components {
		sc.Components[i].Ancestors = map[int]bool{}
		sc.Components[i].Parent = -1
		sc.Components[i].Children = nil
		sc.Components[i].Depth = 0
	}
	if n <= 1 {
		return
	}

	rep := make([]Point, n)
	for i, comp := range sc.Components {
		s := sc.Shapes[representativeShape(comp)]
		rep[i] = s.BoundaryPoint(0)
	}
	center := make([]Point, n)
	for i, comp := range sc.Components {
		center[i] = sc.Shapes[representativeShape(comp)].Center()
	}

	owners := shapeOwners(sc)
	for i := range sc.Components {
		for shapeIdx, s := range sc.Shapes {
			if owners[shapeIdx] == i {
				continue // a shape never contains its own component
			}
			if s.Contains(rep[i]) && s.Contains(center[i]) {
				sc.Components[i].Ancestors[shapeIdx] = true
			}
		}
	}

	for i := range sc.Components {
		best, bestArea := -1, math.Inf(1)
		for shapeIdx := range sc.Components[i].Ancestors {
			if a := sc.Shapes[shapeIdx].Area().Val(); a < bestArea {
				best, bestArea = owners[shapeIdx], a
			}
		}
		sc.Components[i].Parent = best
	}
	for i := range sc.Components {
		if p := sc.Components[i].Parent; p != -1 {
			sc.Components[p].Children = append(sc.Components[p].Children, i)
		}
	}

	for pass := 0; pass < n; pass++ {
		for i := range sc.Components {
			if p := sc.Components[i].Parent; p != -1 {
				sc.Components[i].Depth = sc.Components[p].Depth + 1
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return sc.Components[order[a]].Depth > sc.Components[order[b]].Depth
	})

	for _, pi := range order {
		for _, ci := range sc.Components[pi].Children {
			childTotal := sc.Shapes[0].Center().X.Like(0)
			for ri := range sc.Regions {
				if sc.Regions[ri].Component == ci {
					childTotal = childTotal.Add(sc.Regions[ri].Area)
				}
			}
			for ri := range sc.Regions {
				r := &sc.Regions[ri]
				if r.Component != pi {
					continue
				}
				if !regionMatchesPoint(sc, sc.Components[pi], r.Key, rep[ci]) {
					continue
				}
				r.Area = r.Area.Sub(childTotal)
				break
			}
		}
	}

	for ri := range sc.Regions {
		r := &sc.Regions[ri]
		r.Key = withAncestors(r.Key, sc.Components[r.Component].Ancestors, len(sc.Shapes))
	}
}
