package apvd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneTwoDisjointCircles(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-10), Real(0), Real(1)),
		NewCircle(Real(10), Real(0), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)
	require.Len(t, sc.Regions, 2)

	keys := map[RegionKey]float64{}
	for _, r := range sc.Regions {
		keys[r.Key] = r.Area.Val()
	}
	assert.InDelta(t, math.Pi, keys[RegionKey("0-")], 1e-9)
	assert.InDelta(t, math.Pi, keys[RegionKey("-1")], 1e-9)
}

func TestNewSceneTwoOverlappingCircles(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(-0.5), Real(0), Real(1)),
		NewCircle(Real(0.5), Real(0), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)
	require.Len(t, sc.Regions, 3)

	total := 0.0
	byKey := map[RegionKey]float64{}
	for _, r := range sc.Regions {
		total += r.Area.Val()
		byKey[r.Key] = r.Area.Val()
	}
	// the three regions partition circle0 union circle1, which is less
	// than the sum of their separate areas since they overlap
	assert.Less(t, total, 2*math.Pi)
	assert.Greater(t, total, math.Pi)
	assert.Greater(t, byKey[RegionKey("01")], 0.0)
	assert.Greater(t, byKey[RegionKey("0-")], 0.0)
	assert.Greater(t, byKey[RegionKey("-1")], 0.0)
}

func TestNewSceneSingleShapeIsWholeRegion(t *testing.T) {
	shapes := []Shape{NewCircle(Real(0), Real(0), Real(2))}
	sc, err := NewScene(shapes)
	require.NoError(t, err)
	require.Len(t, sc.Regions, 1)
	assert.InDelta(t, shapes[0].Area().Val(), sc.Regions[0].Area.Val(), 1e-12)
	assert.Equal(t, RegionKey("0"), sc.Regions[0].Key)
}

func TestNewSceneNestedCirclesSubtractChildArea(t *testing.T) {
	big := NewCircle(Real(0), Real(0), Real(5))
	small := NewCircle(Real(0), Real(0), Real(1))
	sc, err := NewScene([]Shape{big, small})
	require.NoError(t, err)
	require.Len(t, sc.Regions, 2)

	byKey := map[RegionKey]float64{}
	for _, r := range sc.Regions {
		byKey[r.Key] = r.Area.Val()
	}
	// the small circle's region is named by both shapes, since every
	// point inside it is also inside the big circle (spec §4.4 step 4's
	// containment, folded into the key by linkContainment)
	assert.InDelta(t, math.Pi, byKey[RegionKey("01")], 1e-9)
	// the big circle's own region excludes the small circle's interior
	assert.InDelta(t, 25*math.Pi-math.Pi, byKey[RegionKey("0-")], 1e-9)

	require.Len(t, sc.Components, 2)
	var parentIdx, childIdx int
	for i, c := range sc.Components {
		if _, ok := c.Shapes[1]; ok {
			childIdx = i
		} else {
			parentIdx = i
		}
	}
	assert.Equal(t, parentIdx, sc.Components[childIdx].Parent)
	assert.Equal(t, 0, sc.Components[parentIdx].Depth)
	assert.Equal(t, 1, sc.Components[childIdx].Depth)
	assert.Contains(t, sc.Components[parentIdx].Children, childIdx)
}

func TestNewSceneThreeCirclesRegionCount(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(0), Real(0), Real(1)),
		NewCircle(Real(0.8), Real(0), Real(1)),
		NewCircle(Real(0.4), Real(0.8), Real(1)),
	}
	sc, err := NewScene(shapes)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(sc.Regions), 3)

	total := 0.0
	for _, r := range sc.Regions {
		total += r.Area.Val()
	}
	assert.Less(t, total, shapes[0].Area().Val()+shapes[1].Area().Val()+shapes[2].Area().Val())
}
