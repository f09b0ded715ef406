package qd

import (
	"math"
)

// sinTaylorQuad evaluates sin t by Taylor series. The argument must already
// be reduced to |t| <= π/32; the series stops once the next term slips
// below the Quad's precision.
func sinTaylorQuad(t Quad) Quad {
	if t.IsZero() {
		return QuadZero
	}

	thresh := 0.5 * math.Abs(t[0]) * QuadEps
	x := t.Sqr().Neg()
	s := t
	p := t

	for i := 0; ; i += 2 {
		p = p.Mul(x)
		term := p.Mul(quadInvFacts[i])
		s = s.Add(term)
		if i+2 >= len(quadInvFacts) || math.Abs(term[0]) <= thresh {
			break
		}
	}
	return s
}

// sincosTaylorQ returns sin t and cos t for a reduced argument; cosine via
// the Pythagorean identity, safe because |t| <= π/32 keeps cos t near 1.
func sincosTaylorQ(t Quad) (sin, cos Quad) {
	if t.IsZero() {
		return QuadZero, QuadOne
	}
	sin = sinTaylorQuad(t)
	cos = QuadOne.Sub(sin.Sqr()).Sqrt()
	return sin, cos
}

// SinCos returns both the sine and cosine of q, sharing one range
// reduction.
//
// The argument is reduced modulo 2π, then π/2 (selecting the quadrant),
// then π/16 (selecting a table entry); the remainder feeds the Taylor
// series and the pieces recombine through the angle-addition identities.
func (q Quad) SinCos() (sin, cos Quad) {
	if q.IsZero() {
		return QuadZero, QuadOne
	}
	if !q.IsFinite() {
		return QuadNaN, QuadNaN
	}

	z := q.Div(QuadTwoPi).Round()
	r := q.Sub(QuadTwoPi.Mul(z))

	p := math.Floor(r[0]/QuadPi2[0] + 0.5)
	t := r.Sub(QuadPi2.MulFloat64(p))
	j := int(p)

	p = math.Floor(t[0]/QuadPi16[0] + 0.5)
	t = t.Sub(QuadPi16.MulFloat64(p))
	k := int(p)

	if j < -2 || j > 2 || k < -4 || k > 4 {
		return QuadNaN, QuadNaN
	}

	sinT, cosT := sincosTaylorQ(t)

	var s, c Quad
	if k == 0 {
		s, c = sinT, cosT
	} else {
		absK := k
		if absK < 0 {
			absK = -absK
		}
		u := quadCosines[absK-1]
		v := quadSines[absK-1]
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

// Sin returns the sine of q.
func (q Quad) Sin() Quad {
	sin, _ := q.SinCos()
	return sin
}

// Cos returns the cosine of q.
func (q Quad) Cos() Quad {
	_, cos := q.SinCos()
	return cos
}

// Atan returns the arctangent of q.
func (q Quad) Atan() Quad {
	return q.Atan2(QuadOne)
}

// Atan2 returns the two-argument arctangent of q (y) and x, resolving the
// quadrant ambiguity of Atan.
//
// (x, y) is normalized onto the unit circle by r = √(x²+y²), and Newton's
// iteration runs on whichever of sin z = y/r, cos z = x/r has the larger,
// better-conditioned denominator. Three fixed iterations take the
// native-precision seed to full precision.
func (q Quad) Atan2(x Quad) Quad {
	y := q

	if x.IsZero() {
		if y.IsZero() {
			return QuadNaN
		}
		if !y.Signbit() {
			return QuadPi2
		}
		return QuadPi2.Neg()
	} else if y.IsZero() {
		if !x.Signbit() {
			return QuadZero
		}
		return QuadPi
	}

	if y.IsInf() {
		if x.IsInf() {
			return QuadNaN
		}
		if !y.Signbit() {
			return QuadPi2
		}
		return QuadPi2.Neg()
	} else if x.IsInf() {
		return QuadZero
	}

	if y.IsNaN() || x.IsNaN() {
		return QuadNaN
	}

	if y.Equal(x) {
		if !y.Signbit() {
			return QuadPi4
		}
		return Quad3Pi4.Neg()
	}
	if y.Equal(x.Neg()) {
		if !y.Signbit() {
			return Quad3Pi4
		}
		return QuadPi4.Neg()
	}

	r := y.Sqr().Add(x.Sqr()).Sqrt()
	xn := x.Div(r)
	yn := y.Div(r)

	z := QuadFromFloat64(math.Atan2(y[0], x[0]))

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
