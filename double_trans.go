package qd

import (
	"math"
)

// expK is the exp range-reduction factor; expInvK is its reciprocal, and
// expSquarings is log2(expK).
const (
	expK         = 512.0
	expInvK      = 0.001953125 // 1/512
	expSquarings = 9
)

// Exp returns e raised to the power d.
//
// The argument is reduced with exp(kx + m ln 2) = 2^m exp(x)^k, choosing m
// so that |kx| <= ln2/2 with k = 512. The reduced argument feeds a short
// Taylor series over the inverse-factorial table, and the reduction is
// undone by nine rounds of r -> 2r + r², the binomial expansion of
// (1+r)^512 - 1, followed by the 2^m scaling and the series' constant 1.
func (d Double) Exp() Double {
	if d[0] <= -600.0 {
		return DoubleZero
	}
	if d[0] > 708.0 {
		return DoubleInf
	}
	if d.IsNaN() {
		return DoubleNaN
	}
	if d.IsZero() {
		return DoubleOne
	}
	if d.Equal(DoubleOne) {
		return DoubleE
	}

	eps := expInvK * DoubleEps

	// m needs nowhere near full precision, so native arithmetic does.
	m := math.Floor(d[0]/DoubleLn2[0] + 0.5)

	x := d.Sub(DoubleLn2.MulFloat64(m)).MulPwr2(expInvK)

	// x + x²/2! + x³/3! + ...
	p := x.Sqr()
	r := x.Add(p.MulPwr2(0.5))
	p = p.Mul(x)
	t := p.Mul(doubleInvFacts[0])
	i := 0

	for {
		r = r.Add(t)
		p = p.Mul(x)
		i++
		t = p.Mul(doubleInvFacts[i])
		if i >= 5 || math.Abs(t[0]) <= eps {
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

// Ln returns the natural logarithm of d.
//
// The Taylor series for ln converges too slowly to be useful, so this
// finds the root of f(x) = exp(x) - a by Newton's iteration instead;
// because exp is its own derivative the update collapses to
//
//	x' = x + a·exp(-x) - 1
//
// The native-precision seed leaves the iteration a handful of quadratic
// steps from convergence; failing to converge within the hard bound means
// a broken invariant, not bad input, and panics.
func (d Double) Ln() Double {
	if d.IsNaN() {
		return DoubleNaN
	}
	if d.Signbit() {
		return DoubleNaN
	}
	if d.IsZero() {
		return DoubleNegInf
	}
	if d.IsInf() {
		return DoubleInf
	}
	if d.Equal(DoubleOne) {
		return DoubleZero
	}

	x := DoubleFromFloat64(math.Log(d[0]))

	// The seed can be exactly zero when d differs from one only in the low
	// limb; scale the tolerance as if the seed were order one.
	k := math.Floor(math.Log2(math.Abs(x[0])))
	if math.IsInf(k, -1) {
		k = 0
	}
	eps := DoubleFromFloat64(DoubleEps).MulPwr2(math.Ldexp(1, int(k)+2))

	for i := 0; i < lnMaxIters; i++ {
		r := x.Add(d.Mul(x.Neg().Exp())).SubFloat64(1.0)
		if x.Sub(r).Abs().LessThan(eps) {
			return r
		}
		x = r
	}
	panic("qd: ln failed to converge")
}

// lnMaxIters bounds the Ln Newton loop; quadratic convergence from a
// correctly rounded seed needs two or three passes, so hitting the bound
// indicates a bug.
const lnMaxIters = 20

// Log10 returns the base-10 logarithm of d.
func (d Double) Log10() Double {
	return d.Ln().Div(DoubleLn10)
}

// Log2 returns the base-2 logarithm of d.
func (d Double) Log2() Double {
	return d.Ln().Div(DoubleLn2)
}

// Log returns the base-b logarithm of d. Ln, Log2 and Log10 are cheaper
// for their respective bases.
func (d Double) Log(b Double) Double {
	return d.Ln().Div(b.Ln())
}
