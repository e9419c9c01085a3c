package apvd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionAreaWholeCircleMatchesFormula(t *testing.T) {
	shapes := []Shape{NewCircle(Real(1), Real(2), Real(3))}
	sc, err := NewScene(shapes)
	require.NoError(t, err)
	require.Len(t, sc.Regions, 1)
	assert.InDelta(t, math.Pi*9, sc.Regions[0].Area.Val(), 1e-9)
}

func TestRegionAreaSumsToUnionForDisjointShapes(t *testing.T) {
	a := NewCircle(Real(-10), Real(0), Real(2))
	b := NewXYRR(Real(10), Real(0), Real(3), Real(1))
	sc, err := NewScene([]Shape{a, b})
	require.NoError(t, err)
	require.Len(t, sc.Regions, 2)
	total := 0.0
	for _, r := range sc.Regions {
		total += r.Area.Val()
	}
	assert.InDelta(t, a.Area().Val()+b.Area().Val(), total, 1e-9)
}

func TestRegionAreaOverlapLessThanEitherWhole(t *testing.T) {
	a := NewCircle(Real(-0.5), Real(0), Real(1))
	b := NewCircle(Real(0.5), Real(0), Real(1))
	sc, err := NewScene([]Shape{a, b})
	require.NoError(t, err)

	var overlap float64
	for _, r := range sc.Regions {
		if r.Key == RegionKey("01") {
			overlap = r.Area.Val()
		}
	}
	assert.Greater(t, overlap, 0.0)
	assert.Less(t, overlap, a.Area().Val())
	assert.Less(t, overlap, b.Area().Val())
}
