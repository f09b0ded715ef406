package qd

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestDoubleDigits(t *testing.T) {
	for _, tc := range []struct {
		in     Double
		prec   int
		digits []int
		exp    int
	}{
		{DoubleFromFloat64(1), 3, []int{1, 0, 0}, 0},
		{DoubleFromFloat64(1.5), 2, []int{1, 5}, 0},
		{DoubleFromFloat64(2317), 4, []int{2, 3, 1, 7}, 3},
		{DoubleFromFloat64(0.25), 3, []int{2, 5, 0}, -1},
		{DoubleFromFloat64(-0.25), 3, []int{2, 5, 0}, -1}, // sign ignored
		{DoubleZero, 3, []int{0, 0, 0}, 0},
		// Rounding carries all the way out the top.
		{dd("0.999999"), 3, []int{1, 0, 0}, 0},
		{dd("9.99"), 2, []int{1, 0}, 1},
	} {
		t.Run(fmt.Sprintf("%s/%d", tc.in, tc.prec), func(t *testing.T) {
			tt := assert.WrapTB(t)
			digits, exp := tc.in.Digits(tc.prec)
			tt.MustEqual(tc.digits, digits)
			tt.MustEqual(tc.exp, exp)
		})
	}
}

func TestDoubleDigitsPi(t *testing.T) {
	tt := assert.WrapTB(t)

	digits, exp := DoublePi.Digits(10)
	tt.MustEqual([]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 4}, digits) // last digit rounded up from ...53
	tt.MustEqual(0, exp)
}

func TestQuadDigits(t *testing.T) {
	tt := assert.WrapTB(t)

	digits, exp := QuadPi.Digits(20)
	tt.MustEqual([]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 5}, digits)
	tt.MustEqual(0, exp)

	digits, exp = QuadFromFloat64(1e100).Digits(3)
	tt.MustEqual([]int{1, 0, 0}, digits)
	tt.MustEqual(100, exp)
}

func TestDoubleString(t *testing.T) {
	for _, tc := range []struct {
		in  Double
		out string
	}{
		{DoubleZero, "0"},
		{DoubleNegZero, "-0"},
		{DoubleOne, "1"},
		{DoubleFromFloat64(-17), "-17"},
		{DoubleFromFloat64(1.5), "1.5"},
		{dd("2317"), "2317"},
		{dd("0.00042"), "0.00042"},
		{DoubleNaN, "NaN"},
		{DoubleInf, "inf"},
		{DoubleNegInf, "-inf"},
		{dd("1e100"), "1e100"},
		{dd("-4.2e-120"), "-4.2e-120"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())
		})
	}
}

func TestDoubleStringPi(t *testing.T) {
	tt := assert.WrapTB(t)

	// 31 significant digits; the next digit of π is 0 so only 30 appear.
	tt.MustEqual("3.14159265358979323846264338328", DoublePi.String())
}

func TestQuadStringPi(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("3.1415926535897932384626433832795028841971693993751058209749446", QuadPi.String())
}

func TestDoubleFormat(t *testing.T) {
	for _, tc := range []struct {
		format string
		in     Double
		out    string
	}{
		{"%v", DoubleFromFloat64(1.5), "1.5"},
		{"%s", DoubleFromFloat64(1.5), "1.5"},
		{"%f", DoubleFromFloat64(1.5), "1.5000000000000000000000000000000"},
		{"%.3f", DoubleFromFloat64(1.5), "1.500"},
		{"%.0f", dd("17.29"), "17"},
		{"%.0f", dd("0.7"), "1"},
		{"%.0f", dd("0.3"), "0"},
		{"%.1f", dd("0.04"), "0.0"},
		{"%.5f", dd("0.016777216"), "0.01678"},
		{"%.3e", dd("0.016777216"), "1.678e-2"},
		{"%.4E", dd("0.016777216"), "1.6777E-2"},
		{"%.0e", dd("0.016777216"), "2e-2"},
		{"%.4g", dd("0.016777216"), "0.01678"},
		{"%.4g", dd("12345678"), "1.235e7"},
		{"%.3e", dd("-42000"), "-4.200e4"},
		{"%+.3e", dd("42000"), "+4.200e4"},
		{"%10.4f", DoubleFromFloat64(1.5), "    1.5000"},
		{"%-10.4f", DoubleFromFloat64(1.5), "1.5000    "},
		{"%010.4f", dd("-1.5"), "-0001.5000"},
		{"%.3f", DoubleNaN, "NaN"},
		{"%.3f", DoubleInf, "inf"},
		{"%.3f", DoubleNegInf, "-inf"},
	} {
		t.Run(fmt.Sprintf("%s/%s", tc.format, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.in))
		})
	}
}

func TestQuadFormat(t *testing.T) {
	for _, tc := range []struct {
		format string
		in     Quad
		out    string
	}{
		{"%v", QuadFromFloat64(1.5), "1.5"},
		{"%.3f", QuadFromFloat64(1.5), "1.500"},
		{"%.10e", qq("0.016777216"), "1.6777216000e-2"},
		{"%.4g", qq("12345678"), "1.235e7"},
	} {
		t.Run(fmt.Sprintf("%s/%s", tc.format, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.format, tc.in))
		})
	}
}

func TestDoubleStringRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		d := randDouble()
		s := d.String()
		back, err := DoubleFromString(s)
		tt.MustOK(err)
		tt.MustEqual(s, back.String(), "round trip via %q", s)
	}
}

func TestQuadStringRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 500; i++ {
		q := randQuad()
		s := q.String()
		back, err := QuadFromString(s)
		tt.MustOK(err)
		tt.MustEqual(s, back.String(), "round trip via %q", s)
	}
}

func BenchmarkDoubleString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchStringSink = DoublePi.String()
	}
}

func BenchmarkDoubleDigits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchDigitsSink, _ = DoublePi.Digits(31)
	}
}

func BenchmarkQuadString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchStringSink = QuadPi.String()
	}
}
