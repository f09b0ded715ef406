package qd

import (
	"math"
)

// Add returns the sum d + n.
func (d Double) Add(n Double) Double {
	if r, ok := preAddD(d, n); ok {
		return r
	}

	s0, e0 := twoSum(d[0], n[0])
	s1, e1 := twoSum(d[1], n[1])

	e0 += s1
	s0, e0 = quickTwoSum(s0, e0)
	e0 += e1
	s0, e0 = quickTwoSum(s0, e0)
	return Double{s0, e0}
}

// AddFloat64 returns d + f.
func (d Double) AddFloat64(f float64) Double {
	if r, ok := preAddD(d, DoubleFromFloat64(f)); ok {
		return r
	}

	s, e := twoSum(d[0], f)
	e += d[1]
	s, e = quickTwoSum(s, e)
	return Double{s, e}
}

// Sub returns the difference d - n.
func (d Double) Sub(n Double) Double {
	return d.Add(n.Neg())
}

// SubFloat64 returns d - f.
func (d Double) SubFloat64(f float64) Double {
	return d.AddFloat64(-f)
}

// Mul returns the product d * n.
func (d Double) Mul(n Double) Double {
	if r, ok := preMulD(d, n); ok {
		return r
	}

	p, e := twoProd(d[0], n[0])
	hi, lo := renorm2(p, e+d[0]*n[1]+d[1]*n[0])
	return Double{hi, lo}
}

// MulFloat64 returns d * f.
func (d Double) MulFloat64(f float64) Double {
	if r, ok := preMulD(d, DoubleFromFloat64(f)); ok {
		return r
	}

	p, e := twoProd(d[0], f)
	hi, lo := renorm2(p, e+d[1]*f)
	return Double{hi, lo}
}

// MulPwr2 returns d * f where f must be an exact power of two. Both limbs
// scale exactly, so no renormalization is needed.
func (d Double) MulPwr2(f float64) Double {
	return Double{d[0] * f, d[1] * f}
}

// Ldexp returns d * 2^n.
func (d Double) Ldexp(n int) Double {
	return Double{math.Ldexp(d[0], n), math.Ldexp(d[1], n)}
}

// Div returns the quotient d / n.
//
// An initial estimate comes from the high limbs; two remainder-driven
// correction terms refine it to full precision before renormalization.
func (d Double) Div(n Double) Double {
	if r, ok := preDivD(d, n); ok {
		return r
	}

	q1 := d[0] / n[0]
	r := d.Sub(n.MulFloat64(q1))
	q2 := r[0] / n[0]
	r = r.Sub(n.MulFloat64(q2))
	q3 := r[0] / n[0]

	s, e := quickTwoSum(q1, q2)
	return Double{s, e}.AddFloat64(q3)
}

// DivFloat64 returns d / f.
func (d Double) DivFloat64(f float64) Double {
	return d.Div(DoubleFromFloat64(f))
}

// Recip returns 1 / d.
func (d Double) Recip() Double {
	return DoubleOne.Div(d)
}

// Special-value preludes. Each returns the shortcut result and true when
// an operand combination is covered by the IEEE policy (NaN dominates,
// then infinities, then signed zeros), or false when the operation must be
// computed normally.

func preAddD(a, b Double) (Double, bool) {
	if a.IsNaN() || b.IsNaN() {
		return DoubleNaN, true
	}
	if a.IsInf() {
		if b.IsInf() {
			if a.Signbit() == b.Signbit() {
				return a, true
			}
			return DoubleNaN, true // Inf - Inf
		}
		return a, true
	}
	if b.IsInf() {
		return b, true
	}
	return Double{}, false
}

func preMulD(a, b Double) (Double, bool) {
	if a.IsNaN() || b.IsNaN() {
		return DoubleNaN, true
	}
	neg := a.Signbit() != b.Signbit()
	if a.IsZero() {
		if b.IsInf() {
			return DoubleNaN, true
		}
		return signedZeroD(neg), true
	}
	if b.IsZero() {
		if a.IsInf() {
			return DoubleNaN, true
		}
		return signedZeroD(neg), true
	}
	if a.IsInf() || b.IsInf() {
		return signedInfD(neg), true
	}
	return Double{}, false
}

func preDivD(a, b Double) (Double, bool) {
	if a.IsNaN() || b.IsNaN() {
		return DoubleNaN, true
	}
	neg := a.Signbit() != b.Signbit()
	if b.IsZero() {
		if a.IsZero() {
			return DoubleNaN, true
		}
		return signedInfD(neg), true
	}
	if a.IsInf() {
		if b.IsInf() {
			return DoubleNaN, true
		}
		return signedInfD(neg), true
	}
	if b.IsInf() {
		return signedZeroD(neg), true
	}
	if a.IsZero() {
		return signedZeroD(neg), true
	}
	return Double{}, false
}

func signedZeroD(neg bool) Double {
	if neg {
		return DoubleNegZero
	}
	return DoubleZero
}

func signedInfD(neg bool) Double {
	if neg {
		return DoubleNegInf
	}
	return DoubleInf
}
