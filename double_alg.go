package qd

import (
	"math"
)

// Sqr returns d². Squaring skips the redundant cross term, so it is
// cheaper than d.Mul(d).
func (d Double) Sqr() Double {
	if d.IsNaN() {
		return DoubleNaN
	}

	p, e := twoSqr(d[0])
	hi, lo := renorm2(p, e+2.0*d[0]*d[1]+d[1]*d[1])
	return Double{hi, lo}
}

// PowInt returns dⁿ for integer n, by binary exponentiation. Negative
// exponents reciprocate the result.
func (d Double) PowInt(n int) Double {
	if n == 0 {
		return DoubleOne
	}

	r := d
	s := DoubleOne
	i := n
	if i < 0 {
		i = -i
	}

	if i > 1 {
		for i > 0 {
			if i%2 == 1 {
				s = s.Mul(r)
			}
			i /= 2
			if i > 0 {
				r = r.Sqr()
			}
		}
	} else {
		s = r
	}

	if n < 0 {
		return s.Recip()
	}
	return s
}

// Pow returns d raised to the power n, as exp(n ln d). Like the underlying
// logarithm this is defined only for positive finite d; zero bases and
// infinite exponents follow the IEEE-754 pow special cases.
func (d Double) Pow(n Double) Double {
	if d.IsZero() {
		if n.IsZero() {
			return DoubleNaN
		} else if !n.Signbit() {
			return DoubleZero
		}
		return DoubleInf
	} else if n.IsInf() {
		if d.Equal(DoubleOne) {
			return DoubleNaN
		} else if !n.Signbit() {
			return DoubleInf
		}
		return DoubleZero
	}
	return n.Mul(d.Ln()).Exp()
}

// Sqrt returns the square root of d.
//
// The seed is a native-precision reciprocal square root; one Karp-Markstein
// refinement
//
//	sqrt(a) ≈ ax + (a - (ax)²)·x/2
//
// doubles the seed's correct digits, which reaches full Double precision
// in a single step.
func (d Double) Sqrt() Double {
	if d.IsZero() {
		return DoubleZero
	}
	if d.Signbit() {
		return DoubleNaN
	}
	if d.IsNaN() {
		return DoubleNaN
	}
	if d.IsInf() {
		return DoubleInf
	}

	x := DoubleFromDiv(1.0, math.Sqrt(d[0]))
	ax := d.Mul(x)
	return ax.Add(d.Sub(ax.Sqr()).Mul(x).MulPwr2(0.5))
}

// Cbrt returns the cube root of d.
func (d Double) Cbrt() Double {
	return d.NRoot(3)
}

// NRoot returns the nth root of d.
//
// Newton's iteration runs on f(x) = x⁻ⁿ - a, whose update
//
//	x' = x + x·(1 - a·xⁿ)/n
//
// needs no root primitive in the derivative; it converges to a^(-1/n) and
// the result is reciprocated at the end.
func (d Double) NRoot(n int) Double {
	if n <= 0 {
		return DoubleNaN
	}
	if n%2 == 0 && d.Signbit() {
		return DoubleNaN
	}
	if n == 1 {
		return d
	}
	if n == 2 {
		return d.Sqrt()
	}
	if d.IsZero() {
		return DoubleZero
	}
	if d.IsNaN() {
		return DoubleNaN
	}
	if d.IsInf() {
		return d
	}

	r := d.Abs()
	x := DoubleFromFloat64(math.Exp(-math.Log(r[0]) / float64(n)))

	x = x.Add(x.Mul(DoubleOne.Sub(r.Mul(x.PowInt(n)))).DivFloat64(float64(n)))
	if d.Signbit() {
		x = x.Neg()
	}
	return x.Recip()
}
