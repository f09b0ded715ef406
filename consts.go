package qd

import (
	"math"
)

// Double constants. Each pair of limbs is the correctly rounded
// double-double rendering of the mathematical value.
var (
	DoubleZero    = Double{0, 0}
	DoubleNegZero = Double{negZero, 0}
	DoubleOne     = Double{1, 0}
	DoubleNaN     = Double{math.NaN(), math.NaN()}
	DoubleInf     = Double{math.Inf(1), 0}
	DoubleNegInf  = Double{math.Inf(-1), 0}

	DoublePi     = Double{3.141592653589793, 1.2246467991473532e-16}
	DoubleTwoPi  = Double{6.283185307179586, 2.4492935982947064e-16}
	DoublePi2    = Double{1.5707963267948966, 6.123233995736766e-17}
	DoublePi4    = Double{0.7853981633974483, 3.061616997868383e-17}
	Double3Pi4   = Double{2.356194490192345, 9.184850993605148e-17}
	DoublePi16   = Double{0.19634954084936207, 7.654042494670958e-18}
	DoubleE      = Double{2.718281828459045, 1.4456468917292502e-16}
	DoubleLn2    = Double{0.6931471805599453, 2.3190468138462996e-17}
	DoubleLn10   = Double{2.302585092994046, -2.1707562233822494e-16}
	DoubleSqrt2  = Double{1.4142135623730951, -9.667293313452913e-17}

	// DoubleEps is 2^-104, the relative precision boundary of a Double.
	DoubleEps = math.Ldexp(1, -104)
)

// Quad constants. The high four limbs of the libqd renderings of each
// value; derived values (2π, π/2, π/4, 3π/4, π/16) come from exact
// power-of-two scaling and one extended-precision addition at init.
var (
	QuadZero    = Quad{0, 0, 0, 0}
	QuadNegZero = Quad{negZero, 0, 0, 0}
	QuadOne     = Quad{1, 0, 0, 0}
	QuadNaN     = Quad{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	QuadInf     = Quad{math.Inf(1), 0, 0, 0}
	QuadNegInf  = Quad{math.Inf(-1), 0, 0, 0}

	QuadPi = Quad{
		3.141592653589793,
		1.2246467991473532e-16,
		-2.9947698097183397e-33,
		1.1124542208633653e-49,
	}
	QuadE = Quad{
		2.718281828459045,
		1.4456468917292502e-16,
		-2.1277171080381768e-33,
		1.515630159841219e-49,
	}
	QuadLn2 = Quad{
		0.6931471805599453,
		2.3190468138462996e-17,
		5.707708438416212e-34,
		-3.582432210601811e-50,
	}
	QuadLn10 = Quad{
		2.302585092994046,
		-2.1707562233822494e-16,
		-9.984262454465777e-33,
		-4.023357454450206e-49,
	}

	QuadTwoPi = QuadPi.MulPwr2(2)
	QuadPi2   = QuadPi.MulPwr2(0.5)
	QuadPi4   = QuadPi.MulPwr2(0.25)
	Quad3Pi4  = QuadPi2.Add(QuadPi4)
	QuadPi16  = QuadPi.MulPwr2(0.0625)

	// QuadEps is 2^-209, the relative precision boundary of a Quad.
	QuadEps = math.Ldexp(1, -209)
)

var negZero = math.Copysign(0, -1)
