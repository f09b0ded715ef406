package qd

import (
	"math"
)

// Pow returns q raised to the power n, as exp(n ln q). Like the underlying
// logarithm this is defined only for positive finite q; zero bases and
// infinite exponents follow the IEEE-754 pow special cases.
func (q Quad) Pow(n Quad) Quad {
	if q.IsZero() {
		if n.IsZero() {
			return QuadNaN
		} else if !n.Signbit() {
			return QuadZero
		}
		return QuadInf
	} else if n.IsInf() {
		if q.Equal(QuadOne) {
			return QuadNaN
		} else if !n.Signbit() {
			return QuadInf
		}
		return QuadZero
	}
	return n.Mul(q.Ln()).Exp()
}

// Sqrt returns the square root of q.
//
// Newton's iteration runs on the reciprocal square root
//
//	x' = x + x·(1/2 - (a/2)·x²)
//
// whose update is division-free; each step doubles the correct digits, so
// three take the 53-bit seed past the Quad's 212 bits, and a final multiply
// by a recovers √a.
func (q Quad) Sqrt() Quad {
	if q.IsZero() {
		return QuadZero
	}
	if q.Signbit() {
		return QuadNaN
	}
	if q.IsNaN() {
		return QuadNaN
	}
	if q.IsInf() {
		return QuadInf
	}

	x := QuadFromFloat64(1.0 / math.Sqrt(q[0]))
	h := q.MulPwr2(0.5)

	for i := 0; i < 3; i++ {
		x = x.Add(QuadFromFloat64(0.5).Sub(h.Mul(x.Sqr())).Mul(x))
	}
	return x.Mul(q)
}

// Cbrt returns the cube root of q.
func (q Quad) Cbrt() Quad {
	return q.NRoot(3)
}

// NRoot returns the nth root of q.
//
// Newton's iteration runs on f(x) = x⁻ⁿ - a, whose update
//
//	x' = x + x·(1 - a·xⁿ)/n
//
// needs no root primitive in the derivative; it converges to a^(-1/n) and
// the result is reciprocated at the end.
func (q Quad) NRoot(n int) Quad {
	if n <= 0 {
		return QuadNaN
	}
	if n%2 == 0 && q.Signbit() {
		return QuadNaN
	}
	if n == 1 {
		return q
	}
	if n == 2 {
		return q.Sqrt()
	}
	if q.IsZero() {
		return QuadZero
	}
	if q.IsNaN() {
		return QuadNaN
	}
	if q.IsInf() {
		return q
	}

	r := q.Abs()
	x := QuadFromFloat64(math.Exp(-math.Log(r[0]) / float64(n)))

	// Each update roughly doubles the correct digits; two carry a 53-bit
	// seed past Quad precision.
	x = x.Add(x.Mul(QuadOne.Sub(r.Mul(x.PowInt(n)))).DivFloat64(float64(n)))
	x = x.Add(x.Mul(QuadOne.Sub(r.Mul(x.PowInt(n)))).DivFloat64(float64(n)))
	if q.Signbit() {
		x = x.Neg()
	}
	return x.Recip()
}
