package qd

import (
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// exactSum reports whether s + e == a + b with no rounding, checked at
// big.Float precision.
func exactSum(a, b, s, e float64) bool {
	want := new(big.Float).SetPrec(200).SetFloat64(a)
	want.Add(want, new(big.Float).SetPrec(200).SetFloat64(b))
	got := new(big.Float).SetPrec(200).SetFloat64(s)
	got.Add(got, new(big.Float).SetPrec(200).SetFloat64(e))
	return want.Cmp(got) == 0
}

func exactProd(a, b, p, e float64) bool {
	want := new(big.Float).SetPrec(200).SetFloat64(a)
	want.Mul(want, new(big.Float).SetPrec(200).SetFloat64(b))
	got := new(big.Float).SetPrec(200).SetFloat64(p)
	got.Add(got, new(big.Float).SetPrec(200).SetFloat64(e))
	return want.Cmp(got) == 0
}

func TestTwoSumExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(120)-60)
		b := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(120)-60)

		s, e := twoSum(a, b)
		tt.MustAssert(exactSum(a, b, s, e), "twoSum(%v, %v) = (%v, %v)", a, b, s, e)
		tt.MustEqual(s, a+b)
	}
}

func TestQuickTwoSumExact(t *testing.T) {
	tt := assert.WrapTB(t)

	// quickTwoSum requires |a| >= |b|.
	for i := 0; i < 10000; i++ {
		a := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(40))
		b := globalRNG.Float64()*2 - 1

		s, e := quickTwoSum(a, b)
		tt.MustAssert(exactSum(a, b, s, e), "quickTwoSum(%v, %v) = (%v, %v)", a, b, s, e)
	}
}

func TestTwoProdExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(60)-30)
		b := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(60)-30)

		p, e := twoProd(a, b)
		tt.MustAssert(exactProd(a, b, p, e), "twoProd(%v, %v) = (%v, %v)", a, b, p, e)
		tt.MustEqual(p, a*b)
	}
}

func TestTwoSqrExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(60)-30)

		p, e := twoSqr(a)
		tt.MustAssert(exactProd(a, a, p, e), "twoSqr(%v) = (%v, %v)", a, p, e)
	}
}

func TestTwoSumErrorBound(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(60)-30)
		b := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(60)-30)

		s, e := twoSum(a, b)
		if s == 0 {
			tt.MustEqual(0.0, e)
			continue
		}
		// |e| <= ulp(s)/2
		ulp := math.Nextafter(math.Abs(s), math.Inf(1)) - math.Abs(s)
		tt.MustAssert(math.Abs(e) <= ulp/2, "error %v exceeds half-ulp %v of %v", e, ulp/2, s)
	}
}

func TestRenormIdempotent(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		q := randQuad()
		r0, r1, r2, r3 := renorm4(q[0], q[1], q[2], q[3])
		tt.MustEqual(q, Quad{r0, r1, r2, r3}, "renorm4 changed canonical %v", q)

		d := randDouble()
		h, l := renorm2(d[0], d[1])
		tt.MustEqual(d, Double{h, l}, "renorm2 changed canonical %v", d)
	}
}

func TestRenormOrders(t *testing.T) {
	tt := assert.WrapTB(t)

	// Overlapping, unordered limbs come out nonoverlapping and descending.
	for i := 0; i < 10000; i++ {
		c := [5]float64{}
		for j := range c {
			c[j] = (globalRNG.Float64()*2 - 1) * math.Ldexp(1, globalRNG.Intn(40)-20)
		}

		r0, r1, r2, r3 := renorm5(c[0], c[1], c[2], c[3], c[4])
		limbs := []float64{r0, r1, r2, r3}
		for j := 1; j < len(limbs); j++ {
			if limbs[j] == 0 {
				continue
			}
			tt.MustAssert(math.Abs(limbs[j]) <= math.Abs(limbs[j-1])*math.Ldexp(1, -52),
				"limb %d (%v) overlaps limb %d (%v)", j, limbs[j], j-1, limbs[j-1])
		}
	}
}

func TestThreeSumExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		a := globalRNG.Float64()*2 - 1
		b := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, -20)
		c := (globalRNG.Float64()*2 - 1) * math.Ldexp(1, -40)

		s, e0, e1 := threeSum(a, b, c)

		want := new(big.Float).SetPrec(300).SetFloat64(a)
		want.Add(want, new(big.Float).SetPrec(300).SetFloat64(b))
		want.Add(want, new(big.Float).SetPrec(300).SetFloat64(c))
		got := new(big.Float).SetPrec(300).SetFloat64(s)
		got.Add(got, new(big.Float).SetPrec(300).SetFloat64(e0))
		got.Add(got, new(big.Float).SetPrec(300).SetFloat64(e1))

		tt.MustAssert(want.Cmp(got) == 0, "threeSum(%v, %v, %v) = (%v, %v, %v)", a, b, c, s, e0, e1)
	}
}
