package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistAndDot(t *testing.T) {
	p := Point{Real(0), Real(0)}
	q := Point{Real(3), Real(4)}
	assert.Equal(t, 5.0, p.Dist(q).Val())
	assert.Equal(t, 25.0, p.DistSqr(q).Val())
}

func TestPointCross(t *testing.T) {
	a := Point{Real(1), Real(0)}
	b := Point{Real(0), Real(1)}
	assert.Equal(t, 1.0, a.Cross(b).Val())
	assert.Equal(t, -1.0, b.Cross(a).Val())
}

func TestPointAddSubScale(t *testing.T) {
	a := Point{Real(1), Real(2)}
	b := Point{Real(3), Real(4)}
	sum := a.Add(b)
	assert.Equal(t, 4.0, sum.X.Val())
	assert.Equal(t, 6.0, sum.Y.Val())

	diff := b.Sub(a)
	assert.Equal(t, 2.0, diff.X.Val())
	assert.Equal(t, 2.0, diff.Y.Val())

	scaled := a.Scale(Real(2))
	assert.Equal(t, 2.0, scaled.X.Val())
	assert.Equal(t, 4.0, scaled.Y.Val())
}
