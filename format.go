package qd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default significant digits when formatting without an explicit precision.
// A Double carries about 31 decimal digits, a Quad about 62.
const (
	doubleDigits = 31
	quadDigits   = 62
)

// Digits returns the first prec significant decimal digits of d and a
// decimal exponent, such that the digits read as d0.d1d2... × 10^exp.
// The sign is ignored; prec must be at least 1. A zero value yields all
// zero digits and exponent 0.
func (d Double) Digits(prec int) (digits []int, exp int) {
	r := d.Abs()
	if r.IsZero() {
		return make([]int, prec), 0
	}

	ten := DoubleFromFloat64(10)

	// The estimate from the top limb can be off by one either way; the
	// scaled value is nudged back into [1, 10) below. Scaling near the
	// float64 range limits goes in stages to avoid overflow.
	exp = int(math.Floor(math.Log10(r[0])))
	if exp < -300 {
		r = r.Mul(ten.PowInt(300))
		r = r.Div(ten.PowInt(exp + 300))
	} else if exp > 300 {
		r = r.Ldexp(-53)
		r = r.Div(ten.PowInt(exp))
		r = r.Ldexp(53)
	} else {
		r = r.Div(ten.PowInt(exp))
	}

	if r.GreaterOrEqualTo(ten) {
		r = r.DivFloat64(10)
		exp++
	} else if r.LessThan(DoubleOne) {
		r = r.MulFloat64(10)
		exp--
	}

	// One extra digit for rounding. The digits can transiently land
	// outside [0, 9] because the low limb can be negative; correctRange
	// fixes them up afterwards.
	digits = make([]int, prec+1)
	for i := range digits {
		dig := int(r[0])
		r = r.SubFloat64(float64(dig))
		r = r.MulFloat64(10)
		digits[i] = dig
	}

	correctRange(digits)
	return roundDigits(digits, exp)
}

// Digits returns the first prec significant decimal digits of q and a
// decimal exponent, such that the digits read as d0.d1d2... × 10^exp.
// The sign is ignored; prec must be at least 1. A zero value yields all
// zero digits and exponent 0.
func (q Quad) Digits(prec int) (digits []int, exp int) {
	r := q.Abs()
	if r.IsZero() {
		return make([]int, prec), 0
	}

	ten := QuadFromFloat64(10)

	exp = int(math.Floor(math.Log10(r[0])))
	if exp < -300 {
		r = r.Mul(ten.PowInt(300))
		r = r.Div(ten.PowInt(exp + 300))
	} else if exp > 300 {
		r = r.Ldexp(-53)
		r = r.Div(ten.PowInt(exp))
		r = r.Ldexp(53)
	} else {
		r = r.Div(ten.PowInt(exp))
	}

	if r.GreaterOrEqualTo(ten) {
		r = r.DivFloat64(10)
		exp++
	} else if r.LessThan(QuadOne) {
		r = r.MulFloat64(10)
		exp--
	}

	digits = make([]int, prec+1)
	for i := range digits {
		dig := int(r[0])
		r = r.SubFloat64(float64(dig))
		r = r.MulFloat64(10)
		digits[i] = dig
	}

	correctRange(digits)
	return roundDigits(digits, exp)
}

// correctRange sweeps digits from the bottom, borrowing or carrying so
// every digit lands in [0, 9].
func correctRange(digits []int) {
	for i := len(digits) - 1; i > 0; i-- {
		if digits[i] < 0 {
			digits[i-1]--
			digits[i] += 10
		} else if digits[i] > 9 {
			digits[i-1]++
			digits[i] -= 10
		}
	}
}

// roundDigits consumes the extra digit extracted for rounding, carrying
// upward as needed. A carry out of the leading digit shifts the whole
// sequence down and bumps the exponent.
func roundDigits(digits []int, exp int) ([]int, int) {
	n := len(digits)
	if digits[n-1] >= 5 {
		digits[n-2]++
		for i := n - 2; i > 0 && digits[i] > 9; i-- {
			digits[i] -= 10
			digits[i-1]++
		}
	}
	out := digits[:n-1]
	if out[0] > 9 {
		exp++
		out[0] -= 10
		out = append([]int{1}, out...)
		out = out[:n-1]
	}
	return out, exp
}

// decimal is the digit-extraction surface the shared formatter runs on;
// Double and Quad both satisfy it.
type decimal interface {
	Digits(prec int) ([]int, int)
	IsZero() bool
	IsNaN() bool
	IsInf() bool
	Signbit() bool
}

// String returns the value of d with up to 31 significant digits, trailing
// zeros dropped. Values with extreme exponents use scientific notation.
func (d Double) String() string {
	return decimalString(d, doubleDigits)
}

// String returns the value of q with up to 62 significant digits, trailing
// zeros dropped. Values with extreme exponents use scientific notation.
func (q Quad) String() string {
	return decimalString(q, quadDigits)
}

// Format implements fmt.Formatter. The verbs e, E, f, F, g, G, v and s are
// supported, along with precision, width, and the '+', '-' and '0' flags.
func (d Double) Format(s fmt.State, c rune) {
	formatDecimal(s, c, d, doubleDigits)
}

// Format implements fmt.Formatter. The verbs e, E, f, F, g, G, v and s are
// supported, along with precision, width, and the '+', '-' and '0' flags.
func (q Quad) Format(s fmt.State, c rune) {
	formatDecimal(s, c, q, quadDigits)
}

func decimalString(v decimal, typeDigits int) string {
	if v.IsNaN() {
		return "NaN"
	}
	if v.IsInf() {
		if v.Signbit() {
			return "-inf"
		}
		return "inf"
	}
	if v.IsZero() {
		if v.Signbit() {
			return "-0"
		}
		return "0"
	}

	digits, exp := v.Digits(typeDigits)
	digits = trimTrailingZeros(digits)
	if exp >= -5 && exp < typeDigits {
		return fixedFromDigits(v.Signbit(), digits, exp, -1)
	}
	return sciFromDigits(v.Signbit(), digits, exp, 'e', -1)
}

func formatDecimal(s fmt.State, c rune, v decimal, typeDigits int) {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'v', 's':
	default:
		fmt.Fprintf(s, "%%!%c(qd)", c)
		return
	}

	var body string
	neg := v.Signbit()
	prec, hasPrec := s.Precision()

	switch {
	case v.IsNaN():
		pad(s, "NaN")
		return
	case v.IsInf():
		body = "inf"

	case c == 'e' || c == 'E':
		if !hasPrec {
			prec = typeDigits - 1
		}
		if v.IsZero() {
			body = sciFromDigits(false, []int{0}, 0, c, prec)
		} else {
			digits, exp := v.Digits(prec + 1)
			body = sciFromDigits(false, digits, exp, c, prec)
		}

	case c == 'f' || c == 'F':
		if !hasPrec {
			prec = typeDigits
		}
		body = fixedBody(v, prec)

	default: // g, G, v, s
		if !hasPrec {
			prec = typeDigits
		} else if prec < 1 {
			prec = 1
		}
		if v.IsZero() {
			body = "0"
		} else {
			digits, exp := v.Digits(prec)
			if !hasPrec {
				digits = trimTrailingZeros(digits)
			}
			if exp >= -4 && exp < prec {
				body = fixedFromDigits(false, digits, exp, -1)
			} else {
				e := byte('e')
				if c == 'G' {
					e = 'E'
				}
				body = sciFromDigits(false, digits, exp, rune(e), -1)
			}
		}
	}

	sign := ""
	if neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}

	if width, ok := s.Width(); ok && s.Flag('0') && !s.Flag('-') && len(sign)+len(body) < width {
		body = strings.Repeat("0", width-len(sign)-len(body)) + body
	}
	pad(s, sign+body)
}

// fixedBody renders v in fixed notation with prec fraction digits,
// re-extracting digits so rounding happens at the requested decimal place.
func fixedBody(v decimal, prec int) string {
	if v.IsZero() {
		return fixedFromDigits(false, []int{0}, 0, prec)
	}

	probe, exp := v.Digits(1)
	sig := exp + 1 + prec
	if sig < 1 {
		// Everything rounds away, except the half-and-up case landing
		// exactly on the last kept place.
		if sig == 0 && probe[0] >= 5 {
			return fixedFromDigits(false, []int{1}, exp+1, prec)
		}
		return fixedFromDigits(false, []int{0}, 0, prec)
	}

	digits, exp := v.Digits(sig)
	return fixedFromDigits(false, digits, exp, prec)
}

// fixedFromDigits lays out significant digits positionally around the
// decimal point. prec < 0 means natural precision: render exactly the
// digits given, no trailing fraction padding.
func fixedFromDigits(neg bool, digits []int, exp int, prec int) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	var frac []int
	if exp >= 0 {
		for i := 0; i <= exp; i++ {
			if i < len(digits) {
				b.WriteByte(byte('0' + digits[i]))
			} else {
				b.WriteByte('0')
			}
		}
		if exp+1 < len(digits) {
			frac = digits[exp+1:]
		}
	} else {
		b.WriteByte('0')
		frac = make([]int, 0, -exp-1+len(digits))
		for i := 0; i < -exp-1; i++ {
			frac = append(frac, 0)
		}
		frac = append(frac, digits...)
	}

	if prec < 0 {
		if len(frac) > 0 {
			b.WriteByte('.')
			for _, d := range frac {
				b.WriteByte(byte('0' + d))
			}
		}
	} else if prec > 0 {
		b.WriteByte('.')
		for i := 0; i < prec; i++ {
			if i < len(frac) {
				b.WriteByte(byte('0' + frac[i]))
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// sciFromDigits renders d0.d1d2...e±exp. prec < 0 means natural precision;
// otherwise exactly prec fraction digits, zero padded.
func sciFromDigits(neg bool, digits []int, exp int, marker rune, prec int) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(byte('0' + digits[0]))

	n := len(digits) - 1
	if prec >= 0 {
		n = prec
	}
	if n > 0 {
		b.WriteByte('.')
		for i := 1; i <= n; i++ {
			if i < len(digits) {
				b.WriteByte(byte('0' + digits[i]))
			} else {
				b.WriteByte('0')
			}
		}
	}

	b.WriteRune(marker)
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

func trimTrailingZeros(digits []int) []int {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

func pad(s fmt.State, str string) {
	width, ok := s.Width()
	if !ok || len(str) >= width {
		fmt.Fprint(s, str)
		return
	}
	gap := strings.Repeat(" ", width-len(str))
	if s.Flag('-') {
		fmt.Fprint(s, str+gap)
	} else {
		fmt.Fprint(s, gap+str)
	}
}
