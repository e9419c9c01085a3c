package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualizeShapesAssignsDistinctGradientBasis(t *testing.T) {
	shapes := []Shape{
		NewCircle(Real(1), Real(2), Real(3)),
		NewXYRR(Real(4), Real(5), Real(6), Real(7)),
	}
	out, g := DualizeShapes(shapes, nil)
	assert.Equal(t, 3+4, g)

	c := out[0].(Circle)
	d, ok := c.C.X.(Dual)
	require.True(t, ok)
	assert.Equal(t, 1.0, d.D[0])
	for i := 1; i < g; i++ {
		assert.Equal(t, 0.0, d.D[i])
	}
}

func TestDualizeShapesHonorsFrozenMask(t *testing.T) {
	shapes := []Shape{NewCircle(Real(1), Real(2), Real(3))}
	mask := TrainableMask{true, true, false} // radius frozen
	out, g := DualizeShapes(shapes, []TrainableMask{mask})
	assert.Equal(t, 2, g)

	c := out[0].(Circle)
	r, ok := c.R.(Dual)
	require.True(t, ok)
	for _, d := range r.D {
		assert.Equal(t, 0.0, d)
	}
}

func TestUpdateShapesAppliesDeltaToTrainableOnly(t *testing.T) {
	shapes := []Shape{NewCircle(Real(1), Real(2), Real(3))}
	mask := TrainableMask{true, false, true}
	out := UpdateShapes(shapes, []TrainableMask{mask}, []float64{10, 100})

	c := out[0].(Circle)
	assert.Equal(t, 11.0, c.C.X.Val())
	assert.Equal(t, 2.0, c.C.Y.Val(), "frozen coordinate must not move")
	assert.Equal(t, 103.0, c.R.Val())
}

func TestGradientExtractsDualGradient(t *testing.T) {
	d := Var(5, 1, 3)
	g := Gradient(d, 3)
	assert.Equal(t, []float64{0, 1, 0}, g)
}

func TestGradientZeroForRealValue(t *testing.T) {
	g := Gradient(Real(5), 4)
	assert.Equal(t, []float64{0, 0, 0, 0}, g)
}

func TestShapeCoordsRoundTripThroughFromCoords(t *testing.T) {
	for _, s := range []Shape{
		NewCircle(Real(1), Real(2), Real(3)),
		NewXYRR(Real(1), Real(2), Real(3), Real(4)),
		NewXYRRT(Real(1), Real(2), Real(3), Real(4), Real(0.5)),
		NewPolygon([]Point{{Real(0), Real(0)}, {Real(1), Real(0)}, {Real(0), Real(1)}}),
	} {
		coords := shapeCoords(s)
		back := shapeFromCoords(s.Kind(), coords)
		assert.Equal(t, s.NumCoords(), back.NumCoords())
		for i, c := range shapeCoords(back) {
			assert.Equal(t, coords[i].Val(), c.Val())
		}
	}
}
