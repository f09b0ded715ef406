package qd

import (
	"math"
)

// Exp returns e raised to the power q.
//
// Same reduction as the Double version: exp(kx + m ln 2) = 2^m exp(x)^k
// with k = 512, a Taylor series on the reduced argument, then nine rounds
// of r -> 2r + r² to undo the scaling. The series runs longer here since
// each term only buys about 18 bits against the Quad's 212.
func (q Quad) Exp() Quad {
	if q[0] <= -600.0 {
		return QuadZero
	}
	if q[0] > 708.0 {
		return QuadInf
	}
	if q.IsNaN() {
		return QuadNaN
	}
	if q.IsZero() {
		return QuadOne
	}
	if q.Equal(QuadOne) {
		return QuadE
	}

	eps := expInvK * QuadEps

	m := math.Floor(q[0]/QuadLn2[0] + 0.5)

	x := q.Sub(QuadLn2.MulFloat64(m)).MulPwr2(expInvK)

	// x + x²/2! + x³/3! + ...
	p := x.Sqr()
	r := x.Add(p.MulPwr2(0.5))
	p = p.Mul(x)
	t := p.Mul(quadInvFacts[0])
	i := 0

	for {
		r = r.Add(t)
		p = p.Mul(x)
		i++
		t = p.Mul(quadInvFacts[i])
		if i >= len(quadInvFacts)-1 || math.Abs(t[0]) <= eps {
			break
		}
	}
	r = r.Add(t)

	for i := 0; i < expSquarings; i++ {
		r = r.MulPwr2(2).Add(r.Sqr())
	}
	r = r.AddFloat64(1.0)

	return r.Ldexp(int(m))
}

// Ln returns the natural logarithm of q, by Newton's iteration on
// f(x) = exp(x) - a with update x' = x + a·exp(-x) - 1, seeded at native
// precision. Hitting the iteration bound means a broken invariant, not bad
// input, and panics.
func (q Quad) Ln() Quad {
	if q.IsNaN() {
		return QuadNaN
	}
	if q.Signbit() {
		return QuadNaN
	}
	if q.IsZero() {
		return QuadNegInf
	}
	if q.IsInf() {
		return QuadInf
	}
	if q.Equal(QuadOne) {
		return QuadZero
	}

	x := QuadFromFloat64(math.Log(q[0]))

	k := math.Floor(math.Log2(math.Abs(x[0])))
	if math.IsInf(k, -1) {
		k = 0
	}
	eps := QuadFromFloat64(QuadEps).MulPwr2(math.Ldexp(1, int(k)+2))

	for i := 0; i < lnMaxIters; i++ {
		r := x.Add(q.Mul(x.Neg().Exp())).SubFloat64(1.0)
		if x.Sub(r).Abs().LessThan(eps) {
			return r
		}
		x = r
	}
	panic("qd: ln failed to converge")
}

// Log10 returns the base-10 logarithm of q.
func (q Quad) Log10() Quad {
	return q.Ln().Div(QuadLn10)
}

// Log2 returns the base-2 logarithm of q.
func (q Quad) Log2() Quad {
	return q.Ln().Div(QuadLn2)
}

// Log returns the base-b logarithm of q.
func (q Quad) Log(b Quad) Quad {
	return q.Ln().Div(b.Ln())
}
