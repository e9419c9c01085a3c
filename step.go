package apvd

// Step is one recorded iteration of the optimization loop: the shapes at
// that point, the scene they induce, and the loss/penalty breakdown
// against the targets (spec §2.9, §3.6).
type Step struct {
	Index      int
	Shapes     []Shape
	Scene      *Scene
	Loss       Num
	Errors     []RegionError
	SelfXPen   Num
	RegularPen Num
	MissingPen Num
	Gradient   []float64
}

// NewStep builds a Step from shapes already dualized for this run (spec
// §4.7): it constructs the scene, computes the fractional-area loss
// against tm, folds in the polygon and missing-region penalties at their
// fixed weights, and records the resulting gradient.
func NewStep(index int, shapes []Shape, tm *TargetsMap, g int) (*Step, error) {
	sc, err := NewScene(shapes)
	if err != nil {
		return nil, err
	}
	areaLoss := ComputeLoss(sc, tm)

	zero := shapes[0].Center().X.Like(0)
	selfX, regular := zero, zero
	for _, s := range shapes {
		poly, ok := s.(Polygon)
		if !ok {
			continue
		}
		selfX = selfX.Add(poly.SelfIntersectionPenalty().Mul(zero.Like(10)))
		regular = regular.Add(poly.RegularityPenalty().Mul(zero.Like(0.01)))
	}
	missing := MissingRegionPenalty(shapes, areaLoss.Errors)

	// The penalty layer adds gradient only: the displayed scalar loss and
	// the convergence test (spec §4.7) must track area error alone, so
	// Loss stays areaLoss.Total while Gradient is taken from the combined
	// total that also steers shapes away from self-crossing and missing
	// regions.
	total := areaLoss.Total.Add(selfX).Add(regular).Add(missing)

	return &Step{
		Index:      index,
		Shapes:     shapes,
		Scene:      sc,
		Loss:       areaLoss.Total,
		Errors:     areaLoss.Errors,
		SelfXPen:   selfX,
		RegularPen: regular,
		MissingPen: missing,
		Gradient:   Gradient(total, g),
	}, nil
}

// FloatCoords returns every trainable coordinate's current float64 value,
// in the same order NewStep's gradient was assigned (spec §3.6's
// cycle-detection key).
func FloatCoords(shapes []Shape, masks []TrainableMask) []float64 {
	var out []float64
	for i, s := range shapes {
		var mask TrainableMask
		if i < len(masks) {
			mask = masks[i]
		}
		for j, c := range shapeCoords(s) {
			if isTrainable(mask, j) {
				out = append(out, c.Val())
			}
		}
	}
	return out
}
