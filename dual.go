package apvd

import "math"

// Num is the scalar capability set every geometry and area formula in this
// package is written against once, over a generic scalar (spec §3.1, §9
// "Autodiff dispatch"). Real and Dual are its two implementers.
//
// Equality and ordering are by value only: a Num equal by value to another
// may carry a different gradient. Callers that need that must compare Val()
// results themselves; Num intentionally exposes no Equal method.
type Num interface {
	Val() float64
	Like(v float64) Num // a constant of the same concrete kind, e.g. Dual's zero-gradient 0.5

	Add(Num) Num
	Sub(Num) Num
	Mul(Num) Num
	Div(Num) Num
	Neg() Num
	Sqrt() Num
	Abs() Num
	Sin() Num
	Cos() Num
	Atan() Num
	Atan2(x Num) Num // atan2(y=self, x)

	// IsNormal reports whether the value and, for Dual, every gradient
	// entry is finite and either normal or zero.
	IsNormal() bool
}

// Real is a plain float64 scalar: Num with no gradient.
type Real float64

// Val returns the float64 value.
func (r Real) Val() float64 { return float64(r) }

// Like returns a Real wrapping v.
func (r Real) Like(v float64) Num { return Real(v) }

// Add returns r+x.
func (r Real) Add(x Num) Num { return Real(float64(r) + x.Val()) }

// Sub returns r-x.
func (r Real) Sub(x Num) Num { return Real(float64(r) - x.Val()) }

// Mul returns r*x.
func (r Real) Mul(x Num) Num { return Real(float64(r) * x.Val()) }

// Div returns r/x.
func (r Real) Div(x Num) Num { return Real(float64(r) / x.Val()) }

// Neg returns -r.
func (r Real) Neg() Num { return Real(-float64(r)) }

// Sqrt returns sqrt(r).
func (r Real) Sqrt() Num { return Real(math.Sqrt(float64(r))) }

// Abs returns |r|.
func (r Real) Abs() Num { return Real(math.Abs(float64(r))) }

// Sin returns sin(r).
func (r Real) Sin() Num { return Real(math.Sin(float64(r))) }

// Cos returns cos(r).
func (r Real) Cos() Num { return Real(math.Cos(float64(r))) }

// Atan returns atan(r).
func (r Real) Atan() Num { return Real(math.Atan(float64(r))) }

// Atan2 returns atan2(r, x).
func (r Real) Atan2(x Num) Num { return Real(math.Atan2(float64(r), x.Val())) }

// IsNormal reports whether r is finite and either zero or a normal float.
func (r Real) IsNormal() bool {
	return isNormalOrZero(float64(r))
}

// Dual carries a value plus a dense gradient with respect to every
// trainable coordinate in one optimization run (spec §3.1).
//
// All Duals participating in one run must share the same gradient length
// G; mixing Duals of different length is a programmer error and will
// panic the first time two of them are combined.
type Dual struct {
	V float64
	D []float64
}

// NewDual returns a Dual with value v and the zero gradient of length g.
func NewDual(v float64, g int) Dual {
	return Dual{V: v, D: make([]float64, g)}
}

// Var returns a Dual representing the i'th trainable coordinate of a run
// with g coordinates total: value v, gradient equal to the i'th standard
// basis vector.
func Var(v float64, i, g int) Dual {
	d := NewDual(v, g)
	d.D[i] = 1
	return d
}

// Val returns the value.
func (a Dual) Val() float64 { return a.V }

// Like returns a zero-gradient Dual of the same length as a, with value v.
func (a Dual) Like(v float64) Num { return NewDual(v, len(a.D)) }

func (a Dual) dual(x Num) Dual {
	switch b := x.(type) {
	case Dual:
		if len(b.D) != len(a.D) {
			panic("apvd: Dual gradient length mismatch")
		}
		return b
	default:
		return NewDual(x.Val(), len(a.D))
	}
}

// Add returns a+x with the sum-rule gradient.
func (a Dual) Add(x Num) Num {
	b := a.dual(x)
	out := NewDual(a.V+b.V, len(a.D))
	for i := range out.D {
		out.D[i] = a.D[i] + b.D[i]
	}
	return out
}

// Sub returns a-x with the sum-rule gradient.
func (a Dual) Sub(x Num) Num {
	b := a.dual(x)
	out := NewDual(a.V-b.V, len(a.D))
	for i := range out.D {
		out.D[i] = a.D[i] - b.D[i]
	}
	return out
}

// Mul returns a*x with the product-rule gradient.
func (a Dual) Mul(x Num) Num {
	b := a.dual(x)
	out := NewDual(a.V*b.V, len(a.D))
	for i := range out.D {
		out.D[i] = a.D[i]*b.V + a.V*b.D[i]
	}
	return out
}

// Div returns a/x with the quotient-rule gradient.
func (a Dual) Div(x Num) Num {
	b := a.dual(x)
	out := NewDual(a.V/b.V, len(a.D))
	for i := range out.D {
		out.D[i] = (a.D[i]*b.V - a.V*b.D[i]) / (b.V * b.V)
	}
	return out
}

// Neg returns -a.
func (a Dual) Neg() Num {
	out := NewDual(-a.V, len(a.D))
	for i := range out.D {
		out.D[i] = -a.D[i]
	}
	return out
}

// Sqrt returns sqrt(a): d/dx sqrt(v) = d/(2*sqrt(v)).
func (a Dual) Sqrt() Num {
	sv := math.Sqrt(a.V)
	out := NewDual(sv, len(a.D))
	for i := range out.D {
		out.D[i] = a.D[i] / (2 * sv)
	}
	return out
}

// Abs returns |a|, with the gradient sign-flipped for negative values.
func (a Dual) Abs() Num {
	if a.V >= 0 {
		out := NewDual(a.V, len(a.D))
		copy(out.D, a.D)
		return out
	}
	return a.Neg()
}

// Sin returns sin(a).
func (a Dual) Sin() Num {
	out := NewDual(math.Sin(a.V), len(a.D))
	c := math.Cos(a.V)
	for i := range out.D {
		out.D[i] = a.D[i] * c
	}
	return out
}

// Cos returns cos(a).
func (a Dual) Cos() Num {
	out := NewDual(math.Cos(a.V), len(a.D))
	s := -math.Sin(a.V)
	for i := range out.D {
		out.D[i] = a.D[i] * s
	}
	return out
}

// Atan returns atan(a): d/dx atan(v) = 1/(1+v^2).
func (a Dual) Atan() Num {
	out := NewDual(math.Atan(a.V), len(a.D))
	denom := 1 + a.V*a.V
	for i := range out.D {
		out.D[i] = a.D[i] / denom
	}
	return out
}

// Atan2 returns atan2(a, x): d atan2(y,x) = (x*dy - y*dx)/(x^2+y^2).
func (a Dual) Atan2(x Num) Num {
	b := a.dual(x)
	out := NewDual(math.Atan2(a.V, b.V), len(a.D))
	denom := b.V*b.V + a.V*a.V
	for i := range out.D {
		out.D[i] = (b.V*a.D[i] - a.V*b.D[i]) / denom
	}
	return out
}

// IsNormal reports whether the value and every gradient entry are finite,
// and either zero or a normal float (spec §4.1).
func (a Dual) IsNormal() bool {
	if !isNormalOrZero(a.V) {
		return false
	}
	for _, d := range a.D {
		if !isNormalOrZero(d) {
			return false
		}
	}
	return true
}

func isNormalOrZero(f float64) bool {
	if f == 0 {
		return true
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) >= 0x1p-1022 // smallest normal float64; below it is subnormal
}
