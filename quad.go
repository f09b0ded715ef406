package qd

import (
	"fmt"
	"math"
	"math/big"
)

// Quad is an extended-precision float represented as the unevaluated sum
// of four float64 limbs in descending magnitude order, mutually
// nonoverlapping. Together they hold roughly 62 significant decimal
// digits.
//
// NaN is any encoding where either of the top limbs is NaN. A Quad is
// infinite if any limb is infinite, since overflow can appear at any
// renormalization stage.
type Quad [4]float64

// QuadFromRaw creates a Quad from four float64s used directly as limbs in
// descending magnitude order. See Quad.Raw() for the counterpart. The
// limbs are not renormalized; callers with arbitrary floats should use
// QuadFromSum or renormalizing constructors.
func QuadFromRaw(c0, c1, c2, c3 float64) Quad { return Quad{c0, c1, c2, c3} }

// QuadFromFloat64 creates a Quad exactly representing a float64.
func QuadFromFloat64(f float64) Quad { return Quad{f, 0, 0, 0} }

// QuadFromInt64 creates a Quad from an int64. Values of magnitude 2^53 or
// more are split across the top two limbs and remain exact.
func QuadFromInt64(v int64) Quad {
	hi := float64(v)
	lo := 0.0
	if v > 1<<53 || v < -(1<<53) {
		if hi >= 1<<63 {
			// float64(v) rounded up to 2^63, just out of int64 range, so
			// v - int64(hi) would overflow. The error fits well within 512.
			lo = -float64(math.MaxInt64-v) - 1
		} else {
			lo = float64(v - int64(hi))
		}
	}
	c0, c1 := twoSum(hi, lo)
	return Quad{c0, c1, 0, 0}
}

// QuadFromInt creates a Quad from an int.
func QuadFromInt(v int) Quad { return QuadFromInt64(int64(v)) }

// QuadFromDouble widens a Double to a Quad.
func QuadFromDouble(d Double) Quad {
	return Quad{d[0], d[1], 0, 0}
}

// QuadFromSum creates a Quad representing the exact sum a + b.
func QuadFromSum(a, b float64) Quad {
	s, e := twoSum(a, b)
	return Quad{s, e, 0, 0}
}

// QuadFromMul creates a Quad representing the exact product a * b.
func QuadFromMul(a, b float64) Quad {
	p, e := twoProd(a, b)
	return Quad{p, e, 0, 0}
}

// QuadFromDiv creates a Quad representing the quotient a / b to full Quad
// precision.
func QuadFromDiv(a, b float64) Quad {
	return QuadFromFloat64(a).Div(QuadFromFloat64(b))
}

// Raw returns the four limbs of the Quad. See QuadFromRaw() for the
// counterpart.
func (q Quad) Raw() (c0, c1, c2, c3 float64) { return q[0], q[1], q[2], q[3] }

// Float64 returns the nearest float64, which is simply the top limb for a
// canonical Quad.
func (q Quad) Float64() float64 { return q[0] }

// Double narrows the Quad to a Double, discarding the two low limbs.
func (q Quad) Double() Double { return Double{q[0], q[1]} }

// BigFloat returns the exact value of the Quad as a big.Float.
func (q Quad) BigFloat() *big.Float {
	b := new(big.Float).SetPrec(512)
	if q.IsNaN() {
		return b // big.Float has no NaN; callers must check IsNaN first
	}
	for i := 0; i < 4; i++ {
		limb := new(big.Float).SetPrec(512).SetFloat64(q[i])
		b.Add(b, limb)
	}
	return b
}

func (q Quad) IsZero() bool { return q[0] == 0 }

func (q Quad) IsNaN() bool {
	return math.IsNaN(q[0]) || math.IsNaN(q[1])
}

// IsInf reports whether any limb is infinite; overflow can surface below
// the top limb mid-renormalization.
func (q Quad) IsInf() bool {
	return math.IsInf(q[0], 0) || math.IsInf(q[1], 0) ||
		math.IsInf(q[2], 0) || math.IsInf(q[3], 0)
}

func (q Quad) IsFinite() bool {
	return !q.IsNaN() && !q.IsInf()
}

// Signbit reports whether the Quad is negative or negative zero.
func (q Quad) Signbit() bool { return math.Signbit(q[0]) }

// Sign returns -1, 0 or 1 depending on the sign of the value. Sign of NaN
// is 0.
func (q Quad) Sign() int {
	if q[0] > 0 {
		return 1
	} else if q[0] < 0 {
		return -1
	}
	return 0
}

func (q Quad) Neg() Quad { return Quad{-q[0], -q[1], -q[2], -q[3]} }

func (q Quad) Abs() Quad {
	if q.Signbit() {
		return q.Neg()
	}
	return q
}

// Floor returns the greatest integer value less than or equal to q. Each
// limb is floored only while all limbs above it are already integral.
func (q Quad) Floor() Quad {
	c0 := math.Floor(q[0])
	c1, c2, c3 := 0.0, 0.0, 0.0

	if c0 == q[0] {
		c1 = math.Floor(q[1])
		if c1 == q[1] {
			c2 = math.Floor(q[2])
			if c2 == q[2] {
				c3 = math.Floor(q[3])
			}
		}
		r0, r1, r2, r3 := renorm4(c0, c1, c2, c3)
		return Quad{r0, r1, r2, r3}
	}
	return Quad{c0, c1, c2, c3}
}

// Ceil returns the least integer value greater than or equal to q.
func (q Quad) Ceil() Quad {
	c0 := math.Ceil(q[0])
	c1, c2, c3 := 0.0, 0.0, 0.0

	if c0 == q[0] {
		c1 = math.Ceil(q[1])
		if c1 == q[1] {
			c2 = math.Ceil(q[2])
			if c2 == q[2] {
				c3 = math.Ceil(q[3])
			}
		}
		r0, r1, r2, r3 := renorm4(c0, c1, c2, c3)
		return Quad{r0, r1, r2, r3}
	}
	return Quad{c0, c1, c2, c3}
}

// Round returns the nearest integer value to q, half away from zero.
func (q Quad) Round() Quad {
	if q.Signbit() {
		return q.Neg().AddFloat64(0.5).Floor().Neg()
	}
	return q.AddFloat64(0.5).Floor()
}

// Cmp compares q to n and returns:
//
//	< 0 if q <  n
//	  0 if q == n
//	> 0 if q >  n
//
// Comparisons involving NaN follow the limb floats: NaN is unordered, so
// Cmp reports 0 only for equal limbs; use IsNaN to screen first.
func (q Quad) Cmp(n Quad) int {
	for i := 0; i < 4; i++ {
		if q[i] < n[i] {
			return -1
		} else if q[i] > n[i] {
			return 1
		}
	}
	return 0
}

func (q Quad) Equal(n Quad) bool {
	return q[0] == n[0] && q[1] == n[1] && q[2] == n[2] && q[3] == n[3]
}

func (q Quad) LessThan(n Quad) bool {
	return !q.IsNaN() && !n.IsNaN() && q.Cmp(n) < 0
}

func (q Quad) GreaterThan(n Quad) bool {
	return !q.IsNaN() && !n.IsNaN() && q.Cmp(n) > 0
}

func (q Quad) LessOrEqualTo(n Quad) bool {
	return !q.IsNaN() && !n.IsNaN() && q.Cmp(n) <= 0
}

func (q Quad) GreaterOrEqualTo(n Quad) bool {
	return !q.IsNaN() && !n.IsNaN() && q.Cmp(n) >= 0
}

func (q Quad) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quad) UnmarshalText(bts []byte) (err error) {
	v, err := QuadFromString(string(bts))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (q Quad) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.String() + `"`), nil
}

func (q *Quad) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("qd: quad invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("qd: quad invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := QuadFromString(string(bts))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
