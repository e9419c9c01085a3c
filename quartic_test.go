package apvd

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicRealRootsKnownValues(t *testing.T) {
	// (y-1)(y-2)(y-3) = y^3 - 6y^2 + 11y - 6
	roots := cubicRealRoots(-6, 11, -6)
	sort.Float64s(roots)
	assert.Len(t, roots, 3)
	want := []float64{1, 2, 3}
	for i, w := range want {
		assert.InDelta(t, w, roots[i], 1e-9)
	}
}

func TestQuarticRealRootsKnownValues(t *testing.T) {
	// (t-1)(t+1)(t-2)(t+2) = t^4 - 5t^2 + 4
	roots := quarticRealRoots(0, -5, 0, 4)
	sort.Float64s(roots)
	assert.Len(t, roots, 4)
	want := []float64{-2, -1, 1, 2}
	for i, w := range want {
		assert.InDelta(t, w, roots[i], 1e-7)
	}
}

func TestQuarticRootsSatisfyEquation(t *testing.T) {
	a3, a2, a1, a0 := Real(-1.0), Real(-3.0), Real(2.0), Real(1.0)
	roots := QuarticRoots(a3, a2, a1, a0)
	for _, r := range roots {
		v := r.Val()
		lhs := v*v*v*v + a3.Val()*v*v*v + a2.Val()*v*v + a1.Val()*v + a0.Val()
		assert.InDelta(t, 0, lhs, 1e-6)
	}
}

func TestDedupRootsMergesClose(t *testing.T) {
	roots := dedupRoots([]float64{1, 1 + rootMergeEps/2, 2, 2.5})
	assert.Len(t, roots, 3)
}

func TestQuarticRootsGradientLifted(t *testing.T) {
	a3 := Var(-1, 0, 1)
	a2 := Real(-3)
	a1 := Real(2)
	a0 := Real(1)
	roots := QuarticRoots(a3, a2, a1, a0)
	for _, r := range roots {
		d, ok := r.(Dual)
		assert.True(t, ok)
		assert.True(t, math.IsInf(d.D[0], 0) == false)
	}
}
