package qd

import (
	"math"
)

// Add returns the sum q + n.
//
// Addition merges the two operands' limb sequences in descending magnitude
// order, like the merge step of a merge sort: whichever remaining limb is
// larger is consumed next and folded into a rolling two-limb accumulator,
// which emits a finished output limb whenever its low half stabilizes.
// Limbs left over when four outputs exist are absorbed additively into the
// last slot; the type's precision is bounded, so the tail is lossy by
// construction.
func (q Quad) Add(n Quad) Quad {
	if r, ok := preAddQ(q, n); ok {
		return r
	}

	var x [4]float64
	i, j, k := 0, 0, 0

	next := func() float64 {
		if i >= 4 {
			j++
			return n[j-1]
		}
		if j >= 4 || math.Abs(q[i]) > math.Abs(n[j]) {
			i++
			return q[i-1]
		}
		j++
		return n[j-1]
	}

	u := next()
	v := next()
	u, v = renorm2(u, v)

	for k < 4 {
		if i >= 4 && j >= 4 {
			x[k] = u
			if k < 3 {
				k++
				x[k] = v
			}
			break
		}

		s, y, z := accumulate(u, v, next())
		u, v = y, z

		if s != 0.0 {
			x[k] = s
			k++
		}
	}

	// Lossy tail absorption of whatever remains.
	for ; i < 4; i++ {
		x[3] += q[i]
	}
	for ; j < 4; j++ {
		x[3] += n[j]
	}

	c0, c1, c2, c3 := renorm4(x[0], x[1], x[2], x[3])
	return Quad{c0, c1, c2, c3}
}

// AddFloat64 returns q + f.
func (q Quad) AddFloat64(f float64) Quad {
	if r, ok := preAddQ(q, QuadFromFloat64(f)); ok {
		return r
	}

	c0, e := twoSum(q[0], f)
	c1, e := twoSum(q[1], e)
	c2, e := twoSum(q[2], e)
	c3, e := twoSum(q[3], e)
	r0, r1, r2, r3 := renorm5(c0, c1, c2, c3, e)
	return Quad{r0, r1, r2, r3}
}

// Sub returns the difference q - n.
func (q Quad) Sub(n Quad) Quad {
	return q.Add(n.Neg())
}

// SubFloat64 returns q - f.
func (q Quad) SubFloat64(f float64) Quad {
	return q.AddFloat64(-f)
}

// Mul returns the product q * n.
//
// The full multiplication accumulates the cross-term products in bands of
// equal order: one O(1) product, then the O(eps), O(eps²) and O(eps³)
// bands through exact transforms, with the O(eps⁴) terms summed natively
// into the final error word before renormalization.
func (q Quad) Mul(n Quad) Quad {
	if r, ok := preMulQ(q, n); ok {
		return r
	}

	p0, q0 := twoProd(q[0], n[0])
	p1, q1 := twoProd(q[0], n[1])
	p2, q2 := twoProd(q[1], n[0])
	p3, q3 := twoProd(q[0], n[2])
	p4, q4 := twoProd(q[1], n[1])
	p5, q5 := twoProd(q[2], n[0])

	p1, p2, q0 = threeSum(p1, p2, q0)

	// Six-three sum of p2, q1, q2, p3, p4, p5.
	p2, q1, q2 = threeSum(p2, q1, q2)
	p3, p4, p5 = threeSum(p3, p4, p5)
	s0, t0 := twoSum(p2, p3)
	s1, t1 := twoSum(q1, p4)
	s2 := q2 + p5
	s1, t0 = twoSum(s1, t0)
	s2 += t0 + t1

	p6, q6 := twoProd(q[0], n[3])
	p7, q7 := twoProd(q[1], n[2])
	p8, q8 := twoProd(q[2], n[1])
	p9, q9 := twoProd(q[3], n[0])

	// Nine-two sum of q0, s1, q3, q4, q5, p6, p7, p8, p9.
	q0, q3 = twoSum(q0, q3)
	q4, q5 = twoSum(q4, q5)
	p6, p7 = twoSum(p6, p7)
	p8, p9 = twoSum(p8, p9)
	t0, t1 = twoSum(q0, q4)
	t1 += q3 + q5
	r0, r1 := twoSum(p6, p8)
	r1 += p7 + p9
	q3, q4 = twoSum(t0, r0)
	q4 += t1 + r1
	t0, t1 = twoSum(q3, s1)
	t1 += q4

	// O(eps⁴) terms.
	t1 += q[1]*n[3] + q[2]*n[2] + q[3]*n[1] + q6 + q7 + q8 + q9 + s2

	c0, c1, c2, c3 := renorm5(p0, p1, s0, t0, t1)
	return Quad{c0, c1, c2, c3}
}

// MulFloat64 returns q * f.
func (q Quad) MulFloat64(f float64) Quad {
	if r, ok := preMulQ(q, QuadFromFloat64(f)); ok {
		return r
	}

	p0, q0 := twoProd(q[0], f)
	p1, q1 := twoProd(q[1], f)
	p2, q2 := twoProd(q[2], f)
	p3 := q[3] * f

	s0 := p0
	s1, s2 := twoSum(q0, p1)
	s2, q1, p2 = threeSum(s2, q1, p2)
	q1, q2 = threeSum2(q1, q2, p3)
	s3 := q1
	s4 := q2 + p2

	r0, r1, r2, r3 := renorm5(s0, s1, s2, s3, s4)
	return Quad{r0, r1, r2, r3}
}

// MulPwr2 returns q * f where f must be an exact power of two. All limbs
// scale exactly, so no renormalization is needed.
func (q Quad) MulPwr2(f float64) Quad {
	return Quad{q[0] * f, q[1] * f, q[2] * f, q[3] * f}
}

// Ldexp returns q * 2^n.
func (q Quad) Ldexp(n int) Quad {
	return Quad{
		math.Ldexp(q[0], n),
		math.Ldexp(q[1], n),
		math.Ldexp(q[2], n),
		math.Ldexp(q[3], n),
	}
}

// Sqr returns q². Since both operands are the same value, half the cross
// terms collapse:
//
//	q0² + 2·q0·q1 + 2·q0·q2 + q1² + 2·q0·q3 + 2·q1·q2
//
// and the low words of the last two terms fall below the precision
// boundary entirely. The partial sums combine through a fixed cascade of
// exact additions into a 5-limb intermediate.
func (q Quad) Sqr() Quad {
	if q.IsNaN() {
		return QuadNaN
	}

	p0, q0 := twoSqr(q[0])
	p1, q1 := twoProd(2.0*q[0], q[1])
	p2, q2 := twoProd(2.0*q[0], q[2])
	p3, q3 := twoSqr(q[1])

	p1, q0 = twoSum(q0, p1)

	q0, q1 = twoSum(q0, q1)
	p2, p3 = twoSum(p2, p3)

	s0, t0 := twoSum(q0, p2)
	s1, t1 := twoSum(q1, p3)

	s1, t0 = twoSum(s1, t0)
	t0 += t1

	s1, t0 = quickTwoSum(s1, t0)
	p2, t1 = quickTwoSum(s0, s1)
	p3, q0 = quickTwoSum(t1, t0)

	p4 := 2.0 * q[0] * q[3]
	p5 := 2.0 * q[1] * q[2]

	p4, p5 = twoSum(p4, p5)
	q2, q3 = twoSum(q2, q3)

	t0, t1 = twoSum(p4, q2)
	t1 = t1 + p5 + q3

	p3, p4 = twoSum(p3, t0)
	p4 = p4 + q0 + t1

	c0, c1, c2, c3 := renorm5(p0, p1, p2, p3, p4)
	return Quad{c0, c1, c2, c3}
}

// Div returns the quotient q / n.
//
// The estimate from the high limbs is refined by four remainder-driven
// correction terms, each peeling one limb's worth of precision off the
// residual, before renormalizing the five quotient words to four limbs.
func (q Quad) Div(n Quad) Quad {
	if r, ok := preDivQ(q, n); ok {
		return r
	}

	q0 := q[0] / n[0]
	r := q.Sub(n.MulFloat64(q0))

	q1 := r[0] / n[0]
	r = r.Sub(n.MulFloat64(q1))

	q2 := r[0] / n[0]
	r = r.Sub(n.MulFloat64(q2))

	q3 := r[0] / n[0]
	r = r.Sub(n.MulFloat64(q3))

	q4 := r[0] / n[0]

	c0, c1, c2, c3 := renorm5(q0, q1, q2, q3, q4)
	return Quad{c0, c1, c2, c3}
}

// DivFloat64 returns q / f.
func (q Quad) DivFloat64(f float64) Quad {
	return q.Div(QuadFromFloat64(f))
}

// Recip returns 1 / q.
func (q Quad) Recip() Quad {
	return QuadOne.Div(q)
}

// PowInt returns qⁿ for integer n, by binary exponentiation on the
// squaring primitive. Negative exponents reciprocate the result.
func (q Quad) PowInt(n int) Quad {
	if n == 0 {
		return QuadOne
	}

	r := q
	s := QuadOne
	k := n
	if k < 0 {
		k = -k
	}

	if k > 1 {
		for k > 0 {
			if k%2 == 1 {
				s = s.Mul(r)
			}
			k /= 2
			if k > 0 {
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

func preAddQ(a, b Quad) (Quad, bool) {
	if a.IsNaN() || b.IsNaN() {
		return QuadNaN, true
	}
	if a.IsInf() {
		if b.IsInf() {
			if a.Signbit() == b.Signbit() {
				return a, true
			}
			return QuadNaN, true // Inf - Inf
		}
		return a, true
	}
	if b.IsInf() {
		return b, true
	}
	return Quad{}, false
}

func preMulQ(a, b Quad) (Quad, bool) {
	if a.IsNaN() || b.IsNaN() {
		return QuadNaN, true
	}
	neg := a.Signbit() != b.Signbit()
	if a.IsZero() {
		if b.IsInf() {
			return QuadNaN, true
		}
		return signedZeroQ(neg), true
	}
	if b.IsZero() {
		if a.IsInf() {
			return QuadNaN, true
		}
		return signedZeroQ(neg), true
	}
	if a.IsInf() || b.IsInf() {
		return signedInfQ(neg), true
	}
	return Quad{}, false
}

func preDivQ(a, b Quad) (Quad, bool) {
	if a.IsNaN() || b.IsNaN() {
		return QuadNaN, true
	}
	neg := a.Signbit() != b.Signbit()
	if b.IsZero() {
		if a.IsZero() {
			return QuadNaN, true
		}
		return signedInfQ(neg), true
	}
	if a.IsInf() {
		if b.IsInf() {
			return QuadNaN, true
		}
		return signedInfQ(neg), true
	}
	if b.IsInf() {
		return signedZeroQ(neg), true
	}
	if a.IsZero() {
		return signedZeroQ(neg), true
	}
	return Quad{}, false
}

func signedZeroQ(neg bool) Quad {
	if neg {
		return QuadNegZero
	}
	return QuadZero
}

func signedInfQ(neg bool) Quad {
	if neg {
		return QuadNegInf
	}
	return QuadInf
}
