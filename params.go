package apvd

// shapeCoords flattens a shape's trainable scalars in the fixed order
// its TrainableMask indexes (spec §3.2).
func shapeCoords(s Shape) []Num {
	switch t := s.(type) {
	case Circle:
		return []Num{t.C.X, t.C.Y, t.R}
	case XYRR:
		return []Num{t.C.X, t.C.Y, t.Rx, t.Ry}
	case XYRRT:
		return []Num{t.C.X, t.C.Y, t.Rx, t.Ry, t.T}
	case Polygon:
		out := make([]Num, 0, 2*len(t.Verts))
		for _, v := range t.Verts {
			out = append(out, v.X, v.Y)
		}
		return out
	}
	panic("apvd: shapeCoords: unknown shape kind")
}

func shapeFromCoords(kind ShapeKind, coords []Num) Shape {
	switch kind {
	case ShapeCircle:
		return Circle{C: Point{coords[0], coords[1]}, R: coords[2]}
	case ShapeXYRR:
		return XYRR{C: Point{coords[0], coords[1]}, Rx: coords[2], Ry: coords[3]}
	case ShapeXYRRT:
		return XYRRT{C: Point{coords[0], coords[1]}, Rx: coords[2], Ry: coords[3], T: coords[4]}
	case ShapePolygon:
		n := len(coords) / 2
		verts := make([]Point, n)
		for i := 0; i < n; i++ {
			verts[i] = Point{coords[2*i], coords[2*i+1]}
		}
		return Polygon{Verts: verts}
	}
	panic("apvd: shapeFromCoords: unknown shape kind")
}

func isTrainable(mask TrainableMask, j int) bool {
	return mask == nil || j >= len(mask) || mask[j]
}

// DualizeShapes rebuilds shapes with every trainable coordinate (per
// masks[i], nil meaning all-trainable) replaced by a Dual carrying a
// distinct standard-basis gradient, ready for one forward pass (spec
// §3.1, §4.1). It returns the rebuilt shapes and the total gradient
// width g.
func DualizeShapes(shapes []Shape, masks []TrainableMask) ([]Shape, int) {
	g := 0
	for i, s := range shapes {
		var mask TrainableMask
		if i < len(masks) {
			mask = masks[i]
		}
		for j := range shapeCoords(s) {
			if isTrainable(mask, j) {
				g++
			}
		}
	}

	out := make([]Shape, len(shapes))
	idx := 0
	for i, s := range shapes {
		var mask TrainableMask
		if i < len(masks) {
			mask = masks[i]
		}
		coords := shapeCoords(s)
		nc := make([]Num, len(coords))
		for j, c := range coords {
			if isTrainable(mask, j) {
				nc[j] = Var(c.Val(), idx, g)
				idx++
			} else {
				nc[j] = NewDual(c.Val(), g)
			}
		}
		out[i] = shapeFromCoords(s.Kind(), nc)
	}
	return out, g
}

// UpdateShapes rebuilds shapes at plain float64 precision, applying
// delta (one entry per trainable coordinate, ordered as DualizeShapes
// assigned them) to every trainable coordinate.
func UpdateShapes(shapes []Shape, masks []TrainableMask, delta []float64) []Shape {
	out := make([]Shape, len(shapes))
	idx := 0
	for i, s := range shapes {
		var mask TrainableMask
		if i < len(masks) {
			mask = masks[i]
		}
		coords := shapeCoords(s)
		nc := make([]Num, len(coords))
		for j, c := range coords {
			v := c.Val()
			if isTrainable(mask, j) {
				v += delta[idx]
				idx++
			}
			nc[j] = Real(v)
		}
		out[i] = shapeFromCoords(s.Kind(), nc)
	}
	return out
}

// Gradient extracts the Dual gradient of a Num produced by a dualized
// forward pass, or a zero vector of width g if v carries none (e.g. it
// came from a Real-only computation).
func Gradient(v Num, g int) []float64 {
	if d, ok := v.(Dual); ok {
		return d.D
	}
	return make([]float64, g)
}
