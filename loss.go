package apvd

// RegionClass tags how an observed region relates to the target map
// (spec §4.7).
type RegionClass uint8

const (
	// RegionMatched is present in both the scene and the targets, with
	// some (possibly zero) fractional-area error.
	RegionMatched RegionClass = iota
	// RegionMissing is required by the targets but absent from the scene.
	RegionMissing
	// RegionExtra is present in the scene but not named by the targets
	// (its target area is implicitly zero).
	RegionExtra
)

// RegionError is one region's contribution to the loss (spec §4.7).
type RegionError struct {
	Key    RegionKey
	Class  RegionClass
	Actual float64
	Target float64
}

// Loss is the fractional-area error summed over every region observed in
// the scene or required by the targets (spec §4.7). It holds no penalty
// terms; NewStep adds those to the gradient separately.
type Loss struct {
	Total  Num
	Errors []RegionError
}

// ComputeLoss compares sc's regions against tm, classifying every region
// and summing |actual_area/scene.total_area - target/targets.total_area|
// as the fractional-area term (spec §4.7): the actual side is normalized
// by the scene's own total area, a Num that moves with the shapes, not
// by the constant target total. Penalties are added separately by the
// caller (model driver), each already pre-multiplied by its own weight.
func ComputeLoss(sc *Scene, tm *TargetsMap) *Loss {
	totalTarget := 0.0
	for k, v := range tm.values {
		if !isConcreteKey(k) {
			continue
		}
		totalTarget += v
	}
	if totalTarget <= 0 {
		totalTarget = 1
	}

	sceneTotal := sc.TotalArea()
	sceneTotalSafe := sceneTotal
	if sceneTotal.Val() == 0 {
		sceneTotalSafe = sceneTotal.Like(1)
	}

	seen := map[RegionKey]bool{}
	loss := &Loss{}
	zero := sc.Shapes[0].Center().X.Like(0)
	total := zero

	for _, r := range sc.Regions {
		seen[r.Key] = true
		target, ok := tm.Area(r.Key)
		class := RegionMatched
		if !ok {
			class, target = RegionExtra, 0
		}
		actualFrac := r.Area.Div(sceneTotalSafe)
		targetFrac := r.Area.Like(target / totalTarget)
		diff := actualFrac.Sub(targetFrac).Abs()
		total = total.Add(diff)
		loss.Errors = append(loss.Errors, RegionError{r.Key, class, r.Area.Val(), target})
	}

	for k, v := range tm.values {
		if !isConcreteKey(k) {
			continue
		}
		rk := RegionKey(k)
		if seen[rk] || v <= 0 {
			continue // present, or not required (zero target)
		}
		total = total.Add(zero.Like(v / totalTarget))
		loss.Errors = append(loss.Errors, RegionError{rk, RegionMissing, 0, v})
	}

	loss.Total = total
	return loss
}

func isConcreteKey(k string) bool {
	for i := 0; i < len(k); i++ {
		if k[i] == '*' {
			return false
		}
	}
	return true
}
