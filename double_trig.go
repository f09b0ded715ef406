package qd

import (
	"math"
)

// Round returns the nearest integer value to d, half away from zero.
func (d Double) Round() Double {
	if d.Signbit() {
		return d.Neg().AddFloat64(0.5).Floor().Neg()
	}
	return d.AddFloat64(0.5).Floor()
}

// sinTaylorD evaluates sin t by Taylor series. The argument must already
// be reduced; the series stops once the next term slips below the Double's
// precision.
func sinTaylorD(t Double) Double {
	if t.IsZero() {
		return DoubleZero
	}

	thresh := 0.5 * math.Abs(t[0]) * DoubleEps
	x := t.Sqr().Neg()
	s := t
	p := t

	for i := 0; ; i += 2 {
		p = p.Mul(x)
		term := p.Mul(doubleInvFacts[i])
		s = s.Add(term)
		if i+2 >= len(doubleInvFacts) || math.Abs(term[0]) <= thresh {
			break
		}
	}
	return s
}

// sincosTaylorD returns sin t and cos t for a reduced argument. The cosine
// comes from the Pythagorean identity, which is safe because |t| <= π/32
// keeps cos t near 1.
func sincosTaylorD(t Double) (sin, cos Double) {
	if t.IsZero() {
		return DoubleZero, DoubleOne
	}
	sin = sinTaylorD(t)
	cos = DoubleOne.Sub(sin.Sqr()).Sqrt()
	return sin, cos
}

// SinCos returns both the sine and cosine of d, sharing one range
// reduction.
//
// The argument is reduced modulo 2π, then π/2 (selecting the quadrant),
// then π/16 (selecting a table entry); the remainder feeds the Taylor
// series and the pieces recombine through the angle-addition identities.
func (d Double) SinCos() (sin, cos Double) {
	if d.IsZero() {
		return DoubleZero, DoubleOne
	}
	if !d.IsFinite() {
		return DoubleNaN, DoubleNaN
	}

	z := d.Div(DoubleTwoPi).Round()
	r := d.Sub(DoubleTwoPi.Mul(z))

	q := math.Floor(r[0]/DoublePi2[0] + 0.5)
	t := r.Sub(DoublePi2.MulFloat64(q))
	j := int(q)

	q = math.Floor(t[0]/DoublePi16[0] + 0.5)
	t = t.Sub(DoublePi16.MulFloat64(q))
	k := int(q)

	if j < -2 || j > 2 || k < -4 || k > 4 {
		return DoubleNaN, DoubleNaN
	}

	sinT, cosT := sincosTaylorD(t)

	var s, c Double
	if k == 0 {
		s, c = sinT, cosT
	} else {
		absK := k
		if absK < 0 {
			absK = -absK
		}
		u := doubleCosines[absK-1]
		v := doubleSines[absK-1]
		if k > 0 {
			s = u.Mul(sinT).Add(v.Mul(cosT))
			c = u.Mul(cosT).Sub(v.Mul(sinT))
		} else {
			s = u.Mul(sinT).Sub(v.Mul(cosT))
			c = u.Mul(cosT).Add(v.Mul(sinT))
		}
	}

	switch j {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case -1:
		return c.Neg(), s
	default: // j == ±2, opposite quadrant
		return s.Neg(), c.Neg()
	}
}

// Sin returns the sine of d.
func (d Double) Sin() Double {
	sin, _ := d.SinCos()
	return sin
}

// Cos returns the cosine of d.
func (d Double) Cos() Double {
	_, cos := d.SinCos()
	return cos
}

// Atan returns the arctangent of d.
func (d Double) Atan() Double {
	return d.Atan2(DoubleOne)
}

// Atan2 returns the two-argument arctangent of d (y) and x, resolving the
// quadrant ambiguity of Atan.
//
// (x, y) is normalized onto the unit circle by r = √(x²+y²), and Newton's
// iteration runs on whichever of sin z = y/r, cos z = x/r has the larger,
// better-conditioned denominator. Three fixed iterations take the
// native-precision seed to full precision.
func (d Double) Atan2(x Double) Double {
	y := d

	if x.IsZero() {
		if y.IsZero() {
			return DoubleNaN
		}
		if !y.Signbit() {
			return DoublePi2
		}
		return DoublePi2.Neg()
	} else if y.IsZero() {
		if !x.Signbit() {
			return DoubleZero
		}
		return DoublePi
	}

	if y.IsInf() {
		if x.IsInf() {
			return DoubleNaN
		}
		if !y.Signbit() {
			return DoublePi2
		}
		return DoublePi2.Neg()
	} else if x.IsInf() {
		return DoubleZero
	}

	if y.IsNaN() || x.IsNaN() {
		return DoubleNaN
	}

	if y.Equal(x) {
		if !y.Signbit() {
			return DoublePi4
		}
		return Double3Pi4.Neg()
	}
	if y.Equal(x.Neg()) {
		if !y.Signbit() {
			return Double3Pi4
		}
		return DoublePi4.Neg()
	}

	r := y.Sqr().Add(x.Sqr()).Sqrt()
	xn := x.Div(r)
	yn := y.Div(r)

	z := DoubleFromFloat64(math.Atan2(y[0], x[0]))

	if math.Abs(xn[0]) > math.Abs(yn[0]) {
		// z' = z + (y/r - sin z) / cos z
		for i := 0; i < 3; i++ {
			sinZ, cosZ := z.SinCos()
			z = z.Add(yn.Sub(sinZ).Div(cosZ))
		}
	} else {
		// z' = z - (x/r - cos z) / sin z
		for i := 0; i < 3; i++ {
			sinZ, cosZ := z.SinCos()
			z = z.Sub(xn.Sub(cosZ).Div(sinZ))
		}
	}
	return z
}
