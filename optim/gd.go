package optim

// GD is vanilla gradient descent: coords -= rate*gradient (spec §4.8).
type GD struct {
	Rate float64
}

// NewGD returns a GD optimizer with the given learning rate.
func NewGD(rate float64) *GD { return &GD{Rate: rate} }

// Step applies one vanilla gradient-descent update.
func (o *GD) Step(coords, gradient []float64) []float64 {
	out := make([]float64, len(coords))
	for i := range coords {
		out[i] = coords[i] - o.Rate*gradient[i]
	}
	return out
}
