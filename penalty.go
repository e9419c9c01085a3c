package apvd

// MissingRegionPenalty pulls shapes toward producing every region key
// the targets require but the scene does not yet have (spec §4.7): for
// each missing key, every pair of shapes both required inside is pulled
// together if their centers are farther apart than the sum of a rough
// "radius" estimate (disjoint case), and every required/excluded pair
// currently overlapping is pushed apart (contained/overlapping case).
func MissingRegionPenalty(shapes []Shape, errs []RegionError) Num {
	zero := shapes[0].Center().X.Like(0)
	total := zero
	for _, e := range errs {
		if e.Class != RegionMissing {
			continue
		}
		var required, excluded []int
		for i := 0; i < len(e.Key); i++ {
			switch e.Key[i] {
			case '-':
				excluded = append(excluded, i)
			default:
				if e.Key[i] != '-' {
					required = append(required, i)
				}
			}
		}
		for a := 0; a < len(required); a++ {
			for b := a + 1; b < len(required); b++ {
				total = total.Add(disjointPull(shapes[required[a]], shapes[required[b]]))
			}
		}
		for _, r := range required {
			for _, x := range excluded {
				total = total.Add(overlapPush(shapes[r], shapes[x]))
			}
		}
	}
	return total
}

func shapeRadius(s Shape) float64 {
	a := s.Area().Val()
	if a < 0 {
		a = -a
	}
	return sqrtApprox(a / piApprox)
}

const piApprox = 3.14159265358979323846

func sqrtApprox(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := x
	for i := 0; i < 20; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}

// disjointPull grows with the squared gap between two shapes that are
// required to overlap but currently are not.
func disjointPull(a, b Shape) Num {
	ca, cb := a.Center(), b.Center()
	d2 := ca.DistSqr(cb)
	minTouch := shapeRadius(a) + shapeRadius(b)
	gap := d2.Sqrt().Sub(d2.Like(minTouch))
	if gap.Val() <= 0 {
		return d2.Like(0)
	}
	return gap.Mul(gap)
}

// overlapPush grows with how far two shapes required to be disjoint
// currently overlap.
func overlapPush(a, b Shape) Num {
	ca, cb := a.Center(), b.Center()
	d2 := ca.DistSqr(cb)
	minTouch := shapeRadius(a) + shapeRadius(b)
	overlap := d2.Like(minTouch).Sub(d2.Sqrt())
	if overlap.Val() <= 0 {
		return d2.Like(0)
	}
	return overlap.Mul(overlap)
}
