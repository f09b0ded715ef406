package qd

import (
	"fmt"
	"math"
	"math/big"
)

// Double is an extended-precision float represented as the unevaluated sum
// of two float64 limbs. The high limb carries the value rounded to native
// precision; the low limb carries the rounding error, nonoverlapping with
// the high limb's bits. Together they hold roughly 31 significant decimal
// digits.
//
// NaN is any encoding where either limb is NaN. Infinities and zeros are
// carried by the high limb with the low limb conventionally 0.
type Double [2]float64

// DoubleFromRaw creates a Double from two float64s used directly as the
// high and low limbs. See Double.Raw() for the counterpart. The limbs are
// not renormalized; callers wanting canonical form from arbitrary floats
// should use DoubleFromSum.
func DoubleFromRaw(hi, lo float64) Double { return Double{hi, lo} }

// DoubleFromFloat64 creates a Double exactly representing a float64.
func DoubleFromFloat64(f float64) Double { return Double{f, 0} }

// DoubleFromInt64 creates a Double from an int64. Values of magnitude
// 2^53 or more are split across both limbs and remain exact.
func DoubleFromInt64(v int64) Double {
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
	return Double{hi, lo}
}

// DoubleFromInt creates a Double from an int.
func DoubleFromInt(v int) Double { return DoubleFromInt64(int64(v)) }

// DoubleFromSum creates a Double representing the exact sum a + b.
func DoubleFromSum(a, b float64) Double {
	s, e := twoSum(a, b)
	return Double{s, e}
}

// DoubleFromMul creates a Double representing the exact product a * b.
func DoubleFromMul(a, b float64) Double {
	p, e := twoProd(a, b)
	return Double{p, e}
}

// DoubleFromDiv creates a Double representing the quotient a / b to full
// Double precision.
func DoubleFromDiv(a, b float64) Double {
	q1 := a / b
	p, e := twoProd(q1, b)
	q2 := ((a - p) - e) / b
	s, lo := quickTwoSum(q1, q2)
	return Double{s, lo}
}

// Raw returns the high and low limbs of the Double. See DoubleFromRaw()
// for the counterpart.
func (d Double) Raw() (hi, lo float64) { return d[0], d[1] }

// Float64 returns the nearest float64, which is simply the high limb for a
// canonical Double.
func (d Double) Float64() float64 { return d[0] }

// BigFloat returns the exact value of the Double as a big.Float.
func (d Double) BigFloat() *big.Float {
	b := new(big.Float).SetPrec(256)
	if d.IsNaN() {
		return b // big.Float has no NaN; callers must check IsNaN first
	}
	b.SetFloat64(d[0])
	lo := new(big.Float).SetPrec(256).SetFloat64(d[1])
	return b.Add(b, lo)
}

func (d Double) IsZero() bool { return d[0] == 0 }

func (d Double) IsNaN() bool {
	return math.IsNaN(d[0]) || math.IsNaN(d[1])
}

// IsInf reports whether either limb is infinite; overflow can surface in
// the low limb mid-renormalization.
func (d Double) IsInf() bool {
	return math.IsInf(d[0], 0) || math.IsInf(d[1], 0)
}

func (d Double) IsFinite() bool {
	return !d.IsNaN() && !d.IsInf()
}

// Signbit reports whether the Double is negative or negative zero.
func (d Double) Signbit() bool { return math.Signbit(d[0]) }

// Sign returns -1, 0 or 1 depending on the sign of the value. Sign of NaN
// is 0.
func (d Double) Sign() int {
	if d[0] > 0 {
		return 1
	} else if d[0] < 0 {
		return -1
	}
	return 0
}

func (d Double) Neg() Double { return Double{-d[0], -d[1]} }

func (d Double) Abs() Double {
	if d.Signbit() {
		return d.Neg()
	}
	return d
}

// Floor returns the greatest integer value less than or equal to d.
func (d Double) Floor() Double {
	hi := math.Floor(d[0])
	lo := 0.0
	if hi == d[0] {
		// High limb is already integral; the fraction lives in the low limb.
		lo = math.Floor(d[1])
		hi, lo = quickTwoSum(hi, lo)
	}
	return Double{hi, lo}
}

// Ceil returns the least integer value greater than or equal to d.
func (d Double) Ceil() Double {
	hi := math.Ceil(d[0])
	lo := 0.0
	if hi == d[0] {
		lo = math.Ceil(d[1])
		hi, lo = quickTwoSum(hi, lo)
	}
	return Double{hi, lo}
}

// Cmp compares d to n and returns:
//
//	< 0 if d <  n
//	  0 if d == n
//	> 0 if d >  n
//
// Comparisons involving NaN follow the limb floats: NaN is unordered, so
// Cmp reports 0 only for equal limbs; use IsNaN to screen first.
func (d Double) Cmp(n Double) int {
	if d[0] < n[0] {
		return -1
	} else if d[0] > n[0] {
		return 1
	} else if d[1] < n[1] {
		return -1
	} else if d[1] > n[1] {
		return 1
	}
	return 0
}

func (d Double) Equal(n Double) bool {
	return d[0] == n[0] && d[1] == n[1]
}

func (d Double) LessThan(n Double) bool {
	return d[0] < n[0] || (d[0] == n[0] && d[1] < n[1])
}

func (d Double) GreaterThan(n Double) bool {
	return d[0] > n[0] || (d[0] == n[0] && d[1] > n[1])
}

func (d Double) LessOrEqualTo(n Double) bool {
	return d[0] < n[0] || (d[0] == n[0] && d[1] <= n[1])
}

func (d Double) GreaterOrEqualTo(n Double) bool {
	return d[0] > n[0] || (d[0] == n[0] && d[1] >= n[1])
}

func (d Double) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Double) UnmarshalText(bts []byte) (err error) {
	v, err := DoubleFromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Double) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Double) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("qd: double invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("qd: double invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := DoubleFromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
