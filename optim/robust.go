package optim

import "math"

// Robust combines Adam, gradient clipping, a linear warmup on the
// learning rate, and rejection of steps whose gradient norm spikes far
// past its running average — a proxy, since Optimizer.Step sees only the
// current gradient and not the resulting loss, for the loss-based
// rejection described in spec §4.8. Rejections counts how many steps
// were discarded (coordinates left unchanged) this way.
type Robust struct {
	Rate         float64
	WarmupSteps  int
	MaxNorm      float64
	RejectFactor float64 // reject when ||gradient|| > RejectFactor * running average

	Rejections int

	t       int
	avgNorm float64
	adam    *Adam
}

// NewRobust returns a Robust optimizer with the conventional Adam
// moment defaults.
func NewRobust(rate float64, warmupSteps int, maxNorm, rejectFactor float64) *Robust {
	return &Robust{
		Rate:         rate,
		WarmupSteps:  warmupSteps,
		MaxNorm:      maxNorm,
		RejectFactor: rejectFactor,
		adam:         NewAdam(rate, 0, 0, 0),
	}
}

// Step applies warmup, rejection, and clipping around an inner Adam
// update.
func (o *Robust) Step(coords, gradient []float64) []float64 {
	o.t++

	norm := 0.0
	for _, g := range gradient {
		norm += g * g
	}
	norm = math.Sqrt(norm)

	if o.t > 1 && o.avgNorm > 0 && norm > o.RejectFactor*o.avgNorm {
		o.Rejections++
		return append([]float64(nil), coords...)
	}
	o.avgNorm += (norm - o.avgNorm) / float64(o.t)

	warmup := 1.0
	if o.WarmupSteps > 0 && o.t < o.WarmupSteps {
		warmup = float64(o.t) / float64(o.WarmupSteps)
	}
	o.adam.Rate = o.Rate * warmup

	clipped := gradient
	if o.MaxNorm > 0 && norm > o.MaxNorm {
		scale := o.MaxNorm / norm
		clipped = make([]float64, len(gradient))
		for i, g := range gradient {
			clipped[i] = g * scale
		}
	}
	return o.adam.Step(coords, clipped)
}
