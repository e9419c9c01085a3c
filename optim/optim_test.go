package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGDStepMovesAgainstGradient(t *testing.T) {
	o := NewGD(0.1)
	out := o.Step([]float64{1, 2}, []float64{1, -1})
	assert.InDelta(t, 0.9, out[0], 1e-12)
	assert.InDelta(t, 2.1, out[1], 1e-12)
}

func TestAdamConvergesOnQuadratic(t *testing.T) {
	o := NewAdam(0.1, 0, 0, 0)
	coords := []float64{10}
	for i := 0; i < 500; i++ {
		grad := []float64{2 * coords[0]} // d/dx x^2
		coords = o.Step(coords, grad)
	}
	assert.InDelta(t, 0, coords[0], 1e-2)
}

func TestClippedLimitsGradientNorm(t *testing.T) {
	inner := &recordingOptimizer{}
	o := NewClipped(inner, 1.0)
	o.Step([]float64{0, 0}, []float64{3, 4}) // norm 5

	norm := math.Hypot(inner.lastGradient[0], inner.lastGradient[1])
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestClippedPassesThroughSmallGradient(t *testing.T) {
	inner := &recordingOptimizer{}
	o := NewClipped(inner, 10.0)
	o.Step([]float64{0}, []float64{1})
	assert.Equal(t, []float64{1}, inner.lastGradient)
}

func TestRobustRejectsGradientSpike(t *testing.T) {
	o := NewRobust(0.1, 0, 1000, 2)
	coords := []float64{0}
	for i := 0; i < 10; i++ {
		coords = o.Step(coords, []float64{1})
	}
	spiked := o.Step(coords, []float64{1000})
	assert.Equal(t, coords, spiked)
	assert.Equal(t, 1, o.Rejections)
}

func TestRobustWarmupScalesEarlySteps(t *testing.T) {
	o := NewRobust(1.0, 10, 0, 0)
	out := o.Step([]float64{0}, []float64{1})
	// at t=1 of a 10-step warmup the effective rate is far below 1.0
	assert.Less(t, math.Abs(out[0]), 0.5)
}

type recordingOptimizer struct {
	lastGradient []float64
}

func (r *recordingOptimizer) Step(coords, gradient []float64) []float64 {
	r.lastGradient = append([]float64(nil), gradient...)
	return coords
}
