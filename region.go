package apvd

// RegionKey encodes which shapes contain a region: for n shapes, byte i
// is idxChar(i) when shape i contains the region, '-' otherwise (spec
// §4.6).
type RegionKey string

// idxChar is the named idx(i) operation of spec §4.6: 0-9 map to the
// digit characters, 11-35 map to 'a'-'y'. Position 10 has no assigned
// character at all — that's not a wraparound bug to fix, it's the
// alphabet's one gap, reproduced here rather than patched over. A shape
// at index 10 can never be named in a RegionKey or a TargetsMap key;
// idxChar returns 0 for it and callers leave that position '-'.
func idxChar(i int) byte {
	switch {
	case i >= 0 && i <= 9:
		return byte('0' + i)
	case i >= 11 && i <= 35:
		return byte('a' + (i - 11))
	default:
		return 0
	}
}

func makeRegionKey(n int, contains map[int]bool) RegionKey {
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		if c := idxChar(i); contains[i] && c != 0 {
			b[i] = c
		} else {
			b[i] = '-'
		}
	}
	return RegionKey(b)
}

// Region is a maximal connected area with constant shape containment
// (spec §3.4, §4.4). Loop is nil for the single whole-shape region of a
// Component with no intersections.
type Region struct {
	ID        int
	Component int
	Key       RegionKey
	Loop      []Segment
	Area      Num
}

// straightShoelace returns the signed area of the loop's nodes, ignoring
// edge curvature, used only to tell a region's winding (spec §4.4's
// interior/exterior-face distinction) apart from its true curved area.
func straightShoelace(c *Component, loop []Segment) float64 {
	sum := 0.0
	for i, seg := range loop {
		a := c.Nodes[c.segStart(seg)].P
		b := c.Nodes[c.segEnd(seg)].P
		_ = i
		sum += a.X.Val()*b.Y.Val() - b.X.Val()*a.Y.Val()
	}
	return sum / 2
}

// TotalArea returns the sum of every region's area (spec §4.5's
// "scene.total_area"), a Num that moves with the shapes it was built
// from rather than a frozen snapshot.
func (sc *Scene) TotalArea() Num {
	total := sc.Shapes[0].Center().X.Like(0)
	for _, r := range sc.Regions {
		total = total.Add(r.Area)
	}
	return total
}

// Area dispatches a RegionKey over the {digit,-,*} alphabet the way
// TargetsMap's closure does (spec §4.5 item 3): a concrete key sums the
// areas of every region with that key (zero if the scene built none),
// and a '*' position expands by inclusion-exclusion into
// area(digit)+area(dash) at that position.
func (sc *Scene) Area(key RegionKey) Num {
	for i := 0; i < len(key); i++ {
		if key[i] != '*' {
			continue
		}
		digit, dash := []byte(key), []byte(key)
		digit[i] = idxChar(i)
		dash[i] = '-'
		return sc.Area(RegionKey(digit)).Add(sc.Area(RegionKey(dash)))
	}
	total := sc.Shapes[0].Center().X.Like(0)
	for _, r := range sc.Regions {
		if r.Key == key {
			total = total.Add(r.Area)
		}
	}
	return total
}

// acceptableLoop applies the closing constraints of spec §4.4 step 6
// beyond straightShoelace's winding test. Two patterns mark a loop as a
// failed trace rather than a real region: its first and last segment
// sharing a host shape (the walk closed back onto the same boundary it
// started from instead of crossing into a different one), and any
// segment's own host shape appearing in the intersection of every
// segment's Contains set (a face can't sit "inside" the very shape
// whose boundary bounds it).
func acceptableLoop(c *Component, loop []Segment) bool {
	if len(loop) < 2 {
		return true
	}
	first, last := loop[0], loop[len(loop)-1]
	if c.Edges[first.Edge].Shape == c.Edges[last.Edge].Shape {
		return false
	}

	inter := map[int]bool{}
	for idx := range c.Edges[first.Edge].Contains {
		inter[idx] = true
	}
	for _, seg := range loop[1:] {
		e := c.Edges[seg.Edge]
		for idx := range inter {
			if !e.Contains[idx] {
				delete(inter, idx)
			}
		}
	}
	for _, seg := range loop {
		if inter[c.Edges[seg.Edge].Shape] {
			return false
		}
	}
	return true
}

// regionKeyFromLoop unions, over every segment in the loop, its edge's
// Contains set together with its own host shape when the segment runs
// Forward (increasing boundary coordinate): the clockwise-next rule in
// chooseNext traces a face with the host's interior on its left exactly
// when the bordering segment is Forward, so a consistently-CCW loop's
// Forward segments name the shapes the face sits inside of.
func regionKeyFromLoop(c *Component, loop []Segment) map[int]bool {
	set := map[int]bool{}
	for _, seg := range loop {
		e := c.Edges[seg.Edge]
		if seg.Forward {
			set[e.Shape] = true
		}
		for idx := range e.Contains {
			set[idx] = true
		}
	}
	return set
}
