package qd

import (
	"errors"
	"strconv"
	"strings"
)

// Parse failures are distinguished by kind so callers can tell absent
// input from malformed input.
var (
	ErrEmpty  = errors.New("qd: empty input")
	ErrSyntax = errors.New("qd: invalid syntax")
)

// DoubleFromString parses a decimal string into a Double.
//
// The accepted grammar is an optional leading sign, decimal digits with
// optional '_' separators (ignored), at most one decimal point, and an
// optional 'e' or 'E' followed by a signed integer exponent. The literals
// "nan", "inf" and "-inf" are recognized case-insensitively. Digits
// accumulate by exact multiply-by-ten-and-add, so every input parses to
// the nearest representable value.
func DoubleFromString(s string) (Double, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Double{}, ErrEmpty
	}

	switch strings.ToLower(s) {
	case "nan":
		return DoubleNaN, nil
	case "inf":
		return DoubleInf, nil
	case "-inf":
		return DoubleNegInf, nil
	}

	result := DoubleZero
	ten := DoubleFromFloat64(10)
	digits, point, sign, exp := 0, -1, 0, 0

scan:
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			result = result.Mul(ten).AddFloat64(float64(ch - '0'))
			digits++
		case ch == '.':
			if point >= 0 {
				return Double{}, ErrSyntax
			}
			point = digits
		case ch == '-':
			if sign != 0 || digits > 0 {
				return Double{}, ErrSyntax
			}
			sign = -1
		case ch == '+':
			if sign != 0 || digits > 0 {
				return Double{}, ErrSyntax
			}
			sign = 1
		case ch == 'e' || ch == 'E':
			e, err := strconv.Atoi(s[i+1:])
			if err != nil {
				return Double{}, ErrSyntax
			}
			exp = e
			break scan
		case ch == '_':
			// separator, no-op
		default:
			return Double{}, ErrSyntax
		}
	}

	if point >= 0 {
		exp -= digits - point
	}
	if exp != 0 {
		// Stage the scaling when the exponent is very small. A number
		// with 30 digits can carry an exponent near -337 without its
		// value underflowing, but applying the full power of ten at once
		// would.
		if exp < -307 {
			adjust := exp + 307
			result = result.Mul(ten.PowInt(adjust))
			exp -= adjust
		}
		result = result.Mul(ten.PowInt(exp))
	}
	if sign == -1 {
		result = result.Neg()
	}
	return result, nil
}

// QuadFromString parses a decimal string into a Quad. The grammar matches
// DoubleFromString.
func QuadFromString(s string) (Quad, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quad{}, ErrEmpty
	}

	switch strings.ToLower(s) {
	case "nan":
		return QuadNaN, nil
	case "inf":
		return QuadInf, nil
	case "-inf":
		return QuadNegInf, nil
	}

	result := QuadZero
	ten := QuadFromFloat64(10)
	digits, point, sign, exp := 0, -1, 0, 0

scan:
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			result = result.Mul(ten).AddFloat64(float64(ch - '0'))
			digits++
		case ch == '.':
			if point >= 0 {
				return Quad{}, ErrSyntax
			}
			point = digits
		case ch == '-':
			if sign != 0 || digits > 0 {
				return Quad{}, ErrSyntax
			}
			sign = -1
		case ch == '+':
			if sign != 0 || digits > 0 {
				return Quad{}, ErrSyntax
			}
			sign = 1
		case ch == 'e' || ch == 'E':
			e, err := strconv.Atoi(s[i+1:])
			if err != nil {
				return Quad{}, ErrSyntax
			}
			exp = e
			break scan
		case ch == '_':
			// separator, no-op
		default:
			return Quad{}, ErrSyntax
		}
	}

	if point >= 0 {
		exp -= digits - point
	}
	if exp != 0 {
		if exp < -307 {
			adjust := exp + 307
			result = result.Mul(ten.PowInt(adjust))
			exp -= adjust
		}
		result = result.Mul(ten.PowInt(exp))
	}
	if sign == -1 {
		result = result.Neg()
	}
	return result, nil
}
