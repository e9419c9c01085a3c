package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLossZeroAtExactMatch(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-10), Real(0), Real(1)),
		NewCircle(Real(10), Real(0), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)

	a := shapes[0].Area().Val()
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": a,
		"-1": a,
		"01": 0,
	})
	require.NoError(t, err)

	loss := ComputeLoss(sc, tm)
	assert.InDelta(t, 0, loss.Total.Val(), 1e-9)
}

func TestComputeLossPositiveOnMismatch(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-10), Real(0), Real(1)),
		NewCircle(Real(10), Real(0), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)

	// equal-area disjoint circles split the scene's area 50/50; targets
	// with a lopsided ratio mismatch that split in fractional terms even
	// though ComputeLoss is scale-invariant on the absolute totals
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": 100,
		"-1": 1,
		"01": 0,
	})
	require.NoError(t, err)

	loss := ComputeLoss(sc, tm)
	assert.Greater(t, loss.Total.Val(), 0.0)
}

func TestComputeLossClassifiesMissing(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-10), Real(0), Real(1)),
		NewCircle(Real(10), Real(0), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)

	// targets require an overlap region the disjoint scene doesn't have
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": 2,
		"-1": 2,
		"01": 5,
	})
	require.NoError(t, err)

	loss := ComputeLoss(sc, tm)
	var sawMissing bool
	for _, e := range loss.Errors {
		if e.Class == RegionMissing && e.Key == RegionKey("01") {
			sawMissing = true
		}
	}
	assert.True(t, sawMissing)
}

func TestComputeLossCarriesGradient(t *testing.T) {
	shapes, g := DualizeShapes([]Shape{
		NewCircle(Real(-0.5), Real(0), Real(1)),
		NewCircle(Real(0.5), Real(0), Real(1)),
	}, nil)
	sc, err := NewScene(shapes)
	require.NoError(t, err)

	tm, err := NewTargetsMap(2, map[string]float64{"0-": 1, "-1": 1, "01": 10})
	require.NoError(t, err)

	loss := ComputeLoss(sc, tm)
	grad := Gradient(loss.Total, g)
	nonzero := false
	for _, v := range grad {
		if v != 0 {
			nonzero = true
		}
	}
	assert.True(t, nonzero, "loss must carry a non-trivial gradient w.r.t. shape coordinates")
}
