// Package optim provides the gradient-based parameter optimizers driving
// a Model's iteration loop (spec §4.8): vanilla gradient descent, Adam,
// gradient-clipped descent, and a "robust" combination of the three with
// warmup and step rejection.
package optim

// Optimizer advances a flat coordinate vector by one step given its
// gradient. It implements apvd.Optimizer by structural typing, so this
// package never needs to import the root package.
type Optimizer interface {
	Step(coords []float64, gradient []float64) []float64
}
