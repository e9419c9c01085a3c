package apvd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingRegionPenaltyZeroWithNoMissingErrors(t *testing.T) {
	shapes := []Shape{NewCircle(Real(0), Real(0), Real(1)), NewCircle(Real(5), Real(0), Real(1))}
	p := MissingRegionPenalty(shapes, nil)
	assert.Equal(t, 0.0, p.Val())
}

func TestMissingRegionPenaltyPullsDisjointShapesTogether(t *testing.T) {
	shapes := []Shape{NewCircle(Real(-100), Real(0), Real(1)), NewCircle(Real(100), Real(0), Real(1))}
	errs := []RegionError{{Key: RegionKey("01"), Class: RegionMissing, Actual: 0, Target: 1}}
	p := MissingRegionPenalty(shapes, errs)
	assert.Greater(t, p.Val(), 0.0)
}

func TestMissingRegionPenaltyZeroWhenAlreadyTouching(t *testing.T) {
	shapes := []Shape{NewCircle(Real(0), Real(0), Real(1)), NewCircle(Real(0.1), Real(0), Real(1))}
	errs := []RegionError{{Key: RegionKey("01"), Class: RegionMissing, Actual: 0, Target: 1}}
	p := MissingRegionPenalty(shapes, errs)
	assert.Equal(t, 0.0, p.Val())
}

func TestSqrtApproxMatchesMathSqrt(t *testing.T) {
	for _, x := range []float64{0, 1, 2, 9, 100, 0.25} {
		assert.InDelta(t, sqrtApproxRef(x), sqrtApprox(x), 1e-9)
		assert.InDelta(t, math.Sqrt(x), sqrtApprox(x), 1e-9)
	}
}

func sqrtApproxRef(x float64) float64 {
	if x <= 0 {
		return 0
	}
	// Newton's method converges to the same fixed point math.Sqrt computes.
	z := x
	for i := 0; i < 50; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}
