package optim

import "math"

// Clipped wraps an inner Optimizer, rescaling the gradient's L2 norm
// down to MaxNorm before delegating, so a single bad step (e.g. near a
// quartic-root singularity) cannot blow up the coordinates (spec §4.8).
type Clipped struct {
	Inner   Optimizer
	MaxNorm float64
}

// NewClipped returns a Clipped optimizer wrapping inner with the given
// gradient-norm ceiling.
func NewClipped(inner Optimizer, maxNorm float64) *Clipped {
	return &Clipped{Inner: inner, MaxNorm: maxNorm}
}

// Step clips gradient's norm to MaxNorm, then delegates to Inner.
func (o *Clipped) Step(coords, gradient []float64) []float64 {
	norm := 0.0
	for _, g := range gradient {
		norm += g * g
	}
	norm = math.Sqrt(norm)
	if norm <= o.MaxNorm || norm == 0 {
		return o.Inner.Step(coords, gradient)
	}
	scale := o.MaxNorm / norm
	clipped := make([]float64, len(gradient))
	for i, g := range gradient {
		clipped[i] = g * scale
	}
	return o.Inner.Step(coords, clipped)
}
