package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedOptimizer struct{}

func (fixedOptimizer) Step(coords, gradient []float64) []float64 {
	out := make([]float64, len(coords))
	for i := range coords {
		out[i] = coords[i] - 0.01*gradient[i]
	}
	return out
}

func twoOverlappingCircleTargets(t *testing.T) *TargetsMap {
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": 2,
		"-1": 2,
		"01": 1,
	})
	require.NoError(t, err)
	return tm
}

func TestModelAdvanceRecordsHistory(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-0.5), Real(0), Real(1)),
		NewCircle(Real(0.5), Real(0), Real(1)),
	}
	m := NewModel(shapes, nil, twoOverlappingCircleTargets(t), fixedOptimizer{})

	ok, err := m.Advance()
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, m.History, 1)
	assert.Equal(t, 0, m.History[0].Index)
}

func TestModelBestTracksLowestLoss(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-0.5), Real(0), Real(1)),
		NewCircle(Real(0.5), Real(0), Real(1)),
	}
	m := NewModel(shapes, nil, twoOverlappingCircleTargets(t), fixedOptimizer{})
	for i := 0; i < 5; i++ {
		ok, err := m.Advance()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	best := m.Best()
	require.NotNil(t, best)
	for _, s := range m.History {
		assert.LessOrEqual(t, best.Loss.Val(), s.Loss.Val())
	}
}

func TestModelAdvanceStopsOnCycle(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-10), Real(0), Real(1)),
		NewCircle(Real(10), Real(0), Real(1)),
	}
	tm, err := NewTargetsMap(2, map[string]float64{"0-": 100, "-1": 100, "01": 0})
	require.NoError(t, err)

	// a zero optimizer never moves the coordinates, so the second step
	// repeats the first step's coordinates exactly
	m := NewModel(shapes, nil, tm, optimizerFunc(func(coords, gradient []float64) []float64 {
		return append([]float64(nil), coords...)
	}))

	ok1, err := m.Advance()
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := m.Advance()
	require.NoError(t, err)
	assert.False(t, ok2, "repeating the same coordinates must be detected as a cycle")
}

type optimizerFunc func(coords, gradient []float64) []float64

func (f optimizerFunc) Step(coords, gradient []float64) []float64 { return f(coords, gradient) }
