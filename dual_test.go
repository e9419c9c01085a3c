package apvd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDualArithmetic(t *testing.T) {
	x := Var(3, 0, 2)
	y := Var(4, 1, 2)

	sum := x.Add(y)
	assert.Equal(t, 7.0, sum.Val())
	assert.Equal(t, []float64{1, 1}, sum.(Dual).D)

	prod := x.Mul(y)
	assert.Equal(t, 12.0, prod.Val())
	assert.Equal(t, []float64{4, 3}, prod.(Dual).D)

	quot := x.Div(y)
	assert.InDelta(t, 0.75, quot.Val(), 1e-12)
	assert.InDelta(t, 1.0/4, quot.(Dual).D[0], 1e-12)
	assert.InDelta(t, -3.0/16, quot.(Dual).D[1], 1e-12)
}

func TestDualSqrtGradient(t *testing.T) {
	x := Var(9, 0, 1)
	root := x.Sqrt()
	assert.InDelta(t, 3.0, root.Val(), 1e-12)
	assert.InDelta(t, 1.0/6, root.(Dual).D[0], 1e-12)
}

func TestDualTrigGradients(t *testing.T) {
	x := Var(0, 0, 1)
	assert.InDelta(t, 0, x.Sin().Val(), 1e-12)
	assert.InDelta(t, 1, x.Sin().(Dual).D[0], 1e-12)
	assert.InDelta(t, 1, x.Cos().Val(), 1e-12)
	assert.InDelta(t, 0, x.Cos().(Dual).D[0], 1e-12)
}

func TestDualAbsSignFlipsGradient(t *testing.T) {
	neg := Var(-5, 0, 1)
	abs := neg.Abs()
	assert.Equal(t, 5.0, abs.Val())
	assert.Equal(t, -1.0, abs.(Dual).D[0])
}

func TestDualIsNormal(t *testing.T) {
	ok := NewDual(1, 2)
	assert.True(t, ok.IsNormal())

	bad := NewDual(math.NaN(), 2)
	assert.False(t, bad.IsNormal())

	badGrad := NewDual(1, 2)
	badGrad.D[1] = math.Inf(1)
	assert.False(t, badGrad.IsNormal())
}

func TestRealIsNormal(t *testing.T) {
	assert.True(t, Real(1).IsNormal())
	assert.False(t, Real(math.NaN()).IsNormal())
	assert.False(t, Real(math.Inf(-1)).IsNormal())
}

func TestDualMismatchedLengthPanics(t *testing.T) {
	a := Var(1, 0, 2)
	b := Var(1, 0, 3)
	assert.Panics(t, func() { a.Add(b) })
}
