/*
Package qd provides double-double (Double) and quad-double (Quad)
extended-precision floating point types.

A Double is an unevaluated sum of two float64s and carries roughly 31
significant decimal digits; a Quad is an unevaluated sum of four float64s
and carries roughly 62. Both use only native float64 hardware arithmetic,
avoiding the cost of arbitrary-precision packages for workloads that just
need "more float64".

Double and Quad are value types; all operations return new values.

Simple example:

	a := qd.DoubleFromFloat64(2)
	fmt.Println(a.Sqrt())
	// Output: 1.41421356237309504880168872421

Double and Quad can be created from a variety of sources:

	DoubleFromRaw(hi, lo float64) Double
	DoubleFromFloat64(f float64) Double
	DoubleFromInt64(v int64) Double
	DoubleFromInt(v int) Double
	DoubleFromMul(a, b float64) Double
	DoubleFromDiv(a, b float64) Double
	DoubleFromString(s string) (Double, error)

Arithmetic involving NaN, infinities and signed zero follows IEEE-754
semantics extended across all limbs; no arithmetic operation returns an
error. The only reported errors come from string parsing.

Double and Quad support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package qd
