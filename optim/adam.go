package optim

import "math"

// Adam is the Adam optimizer (Kingma & Ba), with moment estimates carried
// across Step calls (spec §4.8).
type Adam struct {
	Rate    float64
	Beta1   float64
	Beta2   float64
	Epsilon float64

	t    int
	m, v []float64
}

// NewAdam returns an Adam optimizer with the conventional defaults
// (rate, 0.9, 0.999, 1e-8) when beta1/beta2/epsilon are zero.
func NewAdam(rate, beta1, beta2, epsilon float64) *Adam {
	if beta1 == 0 {
		beta1 = 0.9
	}
	if beta2 == 0 {
		beta2 = 0.999
	}
	if epsilon == 0 {
		epsilon = 1e-8
	}
	return &Adam{Rate: rate, Beta1: beta1, Beta2: beta2, Epsilon: epsilon}
}

// Step applies one Adam update, lazily sizing its moment buffers to
// match coords on the first call.
func (o *Adam) Step(coords, gradient []float64) []float64 {
	if o.m == nil {
		o.m = make([]float64, len(coords))
		o.v = make([]float64, len(coords))
	}
	o.t++
	out := make([]float64, len(coords))
	b1t := 1 - math.Pow(o.Beta1, float64(o.t))
	b2t := 1 - math.Pow(o.Beta2, float64(o.t))
	for i := range coords {
		g := gradient[i]
		o.m[i] = o.Beta1*o.m[i] + (1-o.Beta1)*g
		o.v[i] = o.Beta2*o.v[i] + (1-o.Beta2)*g*g
		mHat := o.m[i] / b1t
		vHat := o.v[i] / b2t
		out[i] = coords[i] - o.Rate*mHat/(math.Sqrt(vHat)+o.Epsilon)
	}
	return out
}
