package qd

// Error-free transformations: each primitive returns the rounded float64
// result of an operation together with the exact rounding error, such that
// the two returned values sum to the true mathematical result.

const (
	// splitter is 2^27+1, used to split a float64 into two 26-bit halves
	// whose product terms are exactly representable.
	splitter = 134217729.0

	// splitThresh is 2^996. Above this, splitting must scale down first to
	// avoid overflowing the splitter multiplication.
	splitThresh = 6.696928794914171e+299
)

// quickTwoSum computes s = round(a+b) and the exact error e, requiring
// |a| >= |b|. Callers must guarantee the ordering; violating it silently
// produces a wrong result.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// twoSum computes s = round(a+b) and the exact error e for any ordering of
// the operands (Knuth's branch-free two-sum).
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)
	return s, e
}

// split breaks a into hi+lo where each half has at most 26 significant
// bits, so that products of halves are exact.
func split(a float64) (hi, lo float64) {
	if a > splitThresh || a < -splitThresh {
		a *= 3.7252902984619140625e-09 // 2^-28
		t := splitter * a
		hi = t - (t - a)
		lo = a - hi
		hi *= 268435456.0 // 2^28
		lo *= 268435456.0
		return hi, lo
	}
	t := splitter * a
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// twoProd computes p = round(a*b) and the exact error e via Dekker's
// split-and-cross-multiply decomposition.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	e = ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo
	return p, e
}

// twoSqr is twoProd specialized for a*a; the symmetric cross terms
// collapse into one.
func twoSqr(a float64) (p, e float64) {
	p = a * a
	hi, lo := split(a)
	e = ((hi*hi - p) + 2.0*hi*lo) + lo*lo
	return p, e
}

// threeSum adds three values, returning the sum and two error terms in
// decreasing order of magnitude.
func threeSum(a, b, c float64) (s, e0, e1 float64) {
	t0, t1 := twoSum(a, b)
	s, t2 := twoSum(c, t0)
	e0, e1 = twoSum(t1, t2)
	return s, e0, e1
}

// threeSum2 is threeSum with the two error terms folded together; used
// where the lowest word would be discarded anyway.
func threeSum2(a, b, c float64) (s, e float64) {
	t0, t1 := twoSum(a, b)
	s, t2 := twoSum(c, t0)
	return s, t1 + t2
}

// accumulate folds x into the rolling two-limb accumulator (u, v). It
// returns the finished output limb s (zero if no limb is stable yet) and
// the updated accumulator. This is the inner step of the quad merge-add.
func accumulate(u, v, x float64) (s, y, z float64) {
	s, z = twoSum(v, x)
	s, y = twoSum(u, s)

	zu := y != 0.0
	zv := z != 0.0
	if zu && zv {
		return s, y, z
	}
	if !zv {
		z = y
		y = s
	} else {
		y = s
	}
	return 0.0, y, z
}

// Renormalization: collapse a limb sequence that may overlap or carry
// excess length back into canonical nonoverlapping, magnitude-descending
// form. Excess precision folds into the last kept limb. The cascade is a
// fixed sequence of quick-two-sums, so identical inputs always produce
// bit-identical outputs.

func renorm2(a, b float64) (float64, float64) {
	return quickTwoSum(a, b)
}

func renorm4(c0, c1, c2, c3 float64) (float64, float64, float64, float64) {
	s2 := 0.0
	s3 := 0.0

	s0, c3 := quickTwoSum(c2, c3)
	s0, c2 = quickTwoSum(c1, s0)
	c0, c1 = quickTwoSum(c0, s0)

	s0 = c0
	s1 := c1
	if s1 != 0.0 {
		s1, s2 = quickTwoSum(s1, c2)
		if s2 != 0.0 {
			s2, s3 = quickTwoSum(s2, c3)
		} else {
			s1, s2 = quickTwoSum(s1, c3)
		}
	} else {
		s0, s1 = quickTwoSum(s0, c2)
		if s1 != 0.0 {
			s1, s2 = quickTwoSum(s1, c3)
		} else {
			s0, s1 = quickTwoSum(s0, c3)
		}
	}
	return s0, s1, s2, s3
}

func renorm5(c0, c1, c2, c3, c4 float64) (float64, float64, float64, float64) {
	s2 := 0.0
	s3 := 0.0

	s0, c4 := quickTwoSum(c3, c4)
	s0, c3 = quickTwoSum(c2, s0)
	s0, c2 = quickTwoSum(c1, s0)
	c0, c1 = quickTwoSum(c0, s0)

	s0 = c0
	s1 := c1
	if s1 != 0.0 {
		s1, s2 = quickTwoSum(s1, c2)
		if s2 != 0.0 {
			s2, s3 = quickTwoSum(s2, c3)
			if s3 != 0.0 {
				s3 += c4
			} else {
				s2, s3 = quickTwoSum(s2, c4)
			}
		} else {
			s1, s2 = quickTwoSum(s1, c3)
			if s2 != 0.0 {
				s2, s3 = quickTwoSum(s2, c4)
			} else {
				s1, s2 = quickTwoSum(s1, c4)
			}
		}
	} else {
		s0, s1 = quickTwoSum(s0, c2)
		if s1 != 0.0 {
			s1, s2 = quickTwoSum(s1, c3)
			if s2 != 0.0 {
				s2, s3 = quickTwoSum(s2, c4)
			} else {
				s1, s2 = quickTwoSum(s1, c4)
			}
		} else {
			s0, s1 = quickTwoSum(s0, c3)
			if s1 != 0.0 {
				s1, s2 = quickTwoSum(s1, c4)
			} else {
				s0, s1 = quickTwoSum(s0, c4)
			}
		}
	}
	return s0, s1, s2, s3
}
