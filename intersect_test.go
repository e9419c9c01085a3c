package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectTwoOverlappingCircles(t *testing.T) {
	a := NewCircle(Real(-0.5), Real(0), Real(1))
	b := NewCircle(Real(0.5), Real(0), Real(1))
	pts := Intersect(a, b)
	assert.Len(t, pts, 2)
	for _, p := range pts {
		assert.True(t, a.Contains(p))
		assert.True(t, b.Contains(p))
		assert.InDelta(t, 0, p.X.Val(), 1e-9)
	}
}

func TestIntersectDisjointCirclesEmpty(t *testing.T) {
	a := NewCircle(Real(-10), Real(0), Real(1))
	b := NewCircle(Real(10), Real(0), Real(1))
	assert.Empty(t, Intersect(a, b))
}

func TestIntersectTangentCircles(t *testing.T) {
	a := NewCircle(Real(0), Real(0), Real(1))
	b := NewCircle(Real(2), Real(0), Real(1))
	pts := Intersect(a, b)
	for _, p := range pts {
		assert.InDelta(t, 1, p.X.Val(), 1e-6)
		assert.InDelta(t, 0, p.Y.Val(), 1e-6)
	}
}

func TestIntersectCircleAndSquare(t *testing.T) {
	c := NewCircle(Real(0), Real(0), Real(1))
	square := NewPolygon([]Point{
		{Real(-2), Real(-0.5)}, {Real(2), Real(-0.5)}, {Real(2), Real(0.5)}, {Real(-2), Real(0.5)},
	})
	pts := Intersect(c, square)
	assert.Len(t, pts, 4)
	for _, p := range pts {
		assert.True(t, c.Contains(p))
	}
}

func TestIntersectSymmetricDispatch(t *testing.T) {
	a := NewCircle(Real(-0.5), Real(0), Real(1))
	b := NewXYRR(Real(0.5), Real(0), Real(1), Real(1))
	ab := Intersect(a, b)
	ba := Intersect(b, a)
	assert.Equal(t, len(ab), len(ba))
}
