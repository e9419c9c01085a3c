package apvd

import (
	"math"
	"sort"
)

// mergeThreshold is the distance below which two intersection points are
// merged into one node (spec §4.3); quartic roots use rootMergeEps.
const mergeThreshold = 1e-7

// rootMergeEps is the tolerance used when deduplicating quartic roots
// (spec §4.3: "Multiple roots within |Delta|<1e-10 are reported once").
const rootMergeEps = 1e-10

// cubicRealRoots returns the real roots of the monic cubic
// y^3 + a*y^2 + b*y + c = 0, via Cardano's depression followed by the
// trigonometric formula for the three-real-roots case.
func cubicRealRoots(a, b, c float64) []float64 {
	shift := a / 3
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c

	var zs []float64
	if math.Abs(p) < 1e-14 && math.Abs(q) < 1e-14 {
		zs = []float64{0}
	} else {
		disc := q*q/4 + p*p*p/27
		switch {
		case disc > 1e-14:
			sq := math.Sqrt(disc)
			zs = []float64{math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)}
		case disc < -1e-14:
			r := math.Sqrt(-p * p * p / 27)
			arg := -q / (2 * r)
			if arg > 1 {
				arg = 1
			} else if arg < -1 {
				arg = -1
			}
			phi := math.Acos(arg)
			m := 2 * math.Sqrt(-p/3)
			for k := 0; k < 3; k++ {
				zs = append(zs, m*math.Cos((phi-2*math.Pi*float64(k))/3))
			}
		default:
			u := math.Cbrt(-q / 2)
			zs = []float64{2 * u, -u}
		}
	}
	roots := make([]float64, len(zs))
	for i, z := range zs {
		roots[i] = z - shift
	}
	sort.Float64s(roots)
	return roots
}

// quarticRealRoots returns the real roots of the monic depressed-to-real
// quartic t^4+a3*t^3+a2*t^2+a1*t+a0=0 (spec §4.3), via Ferrari's method:
// depress to u^4+c*u^2+d*u+e=0, solve the resolvent cubic, factor into
// two quadratics. Duplicate roots within rootMergeEps are reported once.
func quarticRealRoots(a3, a2, a1, a0 float64) []float64 {
	b4 := a3 / 4
	b4sq := b4 * b4
	c := a2 - 6*b4sq
	d := 8*b4sq*b4 - 2*b4*a2 + a1
	e := -3*b4sq*b4sq + b4sq*a2 - b4*a1 + a0

	var roots []float64
	if math.Abs(d) < 1e-14 {
		// biquadratic: u^4+c*u^2+e=0
		disc := c*c - 4*e
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, r := range []float64{(-c + sq) / 2, (-c - sq) / 2} {
				if r >= 0 {
					sq2 := math.Sqrt(r)
					roots = append(roots, sq2, -sq2)
				}
			}
		}
	} else {
		resA2 := 2 * c
		resA1 := c*c - 4*e
		resA0 := -d * d
		cubicRoots := cubicRealRoots(resA2, resA1, resA0)
		u := cubicRoots[len(cubicRoots)-1]
		if u < 0 {
			u = 0 // numerical floor; u should be >=0 for a valid resolvent root
		}
		usq := math.Sqrt(u) / 2
		base := -u - 2*c
		if usq != 0 {
			usqrd := d / (2 * usq)
			d0 := base - usqrd
			d1 := base + usqrd
			if d0 >= 0 {
				s := math.Sqrt(d0) / 2
				roots = append(roots, usq+s, usq-s)
			}
			if d1 >= 0 {
				s := math.Sqrt(d1) / 2
				roots = append(roots, -usq+s, -usq-s)
			}
		}
	}
	for i := range roots {
		roots[i] -= b4
	}
	sort.Float64s(roots)
	return dedupRoots(roots)
}

func dedupRoots(roots []float64) []float64 {
	var out []float64
	for _, r := range roots {
		if len(out) > 0 && math.Abs(out[len(out)-1]-r) < rootMergeEps {
			continue
		}
		out = append(out, r)
	}
	return out
}

// QuarticRoots solves the monic quartic t^4+a3*t^3+a2*t^2+a1*t+a0=0 over
// Num, finding real roots numerically (float64) and then lifting each
// root's gradient via implicit differentiation: at a root t0,
// d(t0)/dp = -(df/dp)/(df/dt), avoiding autodiff through Ferrari's
// method itself.
func QuarticRoots(a3, a2, a1, a0 Num) []Num {
	t0s := quarticRealRoots(a3.Val(), a2.Val(), a1.Val(), a0.Val())
	if _, ok := a3.(Real); ok {
		out := make([]Num, len(t0s))
		for i, t0 := range t0s {
			out[i] = Real(t0)
		}
		return out
	}
	out := make([]Num, len(t0s))
	for i, t0 := range t0s {
		out[i] = liftRoot(t0, a3, a2, a1, a0)
	}
	return out
}

// liftRoot builds the Dual value of a quartic root already known at
// float64 precision t0, propagating gradients from the coefficients via
// the implicit function theorem.
func liftRoot(t0 float64, a3, a2, a1, a0 Num) Num {
	d3, ok3 := a3.(Dual)
	d2, ok2 := a2.(Dual)
	d1, ok1 := a1.(Dual)
	d0, ok0 := a0.(Dual)
	g := 0
	for _, ok := range []struct {
		d  Dual
		is bool
	}{{d3, ok3}, {d2, ok2}, {d1, ok1}, {d0, ok0}} {
		if ok.is {
			g = len(ok.d.D)
			break
		}
	}
	if g == 0 {
		return Real(t0)
	}
	dfdt := 4*t0*t0*t0 + 3*a3.Val()*t0*t0 + 2*a2.Val()*t0 + a1.Val()
	out := NewDual(t0, g)
	for k := 0; k < g; k++ {
		g3, g2, g1, g0 := 0.0, 0.0, 0.0, 0.0
		if ok3 {
			g3 = d3.D[k]
		}
		if ok2 {
			g2 = d2.D[k]
		}
		if ok1 {
			g1 = d1.D[k]
		}
		if ok0 {
			g0 = d0.D[k]
		}
		dfdp := t0*t0*t0*g3 + t0*t0*g2 + t0*g1 + g0
		out.D[k] = -dfdp / dfdt
	}
	return out
}
