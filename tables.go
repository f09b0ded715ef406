package qd

// Reciprocals of the factorials from 1/3! up, as Doubles. Used in Taylor
// series evaluation.
var doubleInvFacts = [15]Double{
	{1.6666666666666666e-1, 9.25185853854297e-18},
	{4.1666666666666664e-2, 2.3129646346357427e-18},
	{8.333333333333333e-3, 1.1564823173178714e-19},
	{1.388888888888889e-3, -5.300543954373577e-20},
	{1.984126984126984e-4, 1.7209558293420705e-22},
	{2.48015873015873e-5, 2.1511947866775882e-23},
	{2.7557319223985893e-6, -1.858393274046472e-22},
	{2.755731922398589e-7, 2.3767714622250297e-23},
	{2.505210838544172e-8, -1.448814070935912e-24},
	{2.08767569878681e-9, -1.20734505911326e-25},
	{1.6059043836821613e-10, 1.2585294588752098e-26},
	{1.1470745597729725e-11, 2.0655512752830745e-28},
	{7.647163731819816e-13, 7.03872877733453e-30},
	{4.779477332387385e-14, 4.399205485834081e-31},
	{2.8114572543455206e-15, 1.6508842730861433e-31},
}

// sin(kπ/16) and cos(kπ/16) for k in [1, 4], as Doubles. Used by the trig
// range reduction.
var doubleSines = [4]Double{
	{1.9509032201612828e-1, -7.991079068461734e-18},
	{3.826834323650898e-1, -1.005077269646159e-17},
	{5.555702330196022e-1, 4.7094109405616756e-17},
	{7.071067811865476e-1, -4.8336466567264573e-17},
}

var doubleCosines = [4]Double{
	{9.807852804032304e-1, 1.8546939997824996e-17},
	{9.238795325112867e-1, 1.764504708433667e-17},
	{8.314696123025452e-1, 1.4073856984728008e-18},
	{7.071067811865476e-1, -4.8336466567264573e-17},
}

// Quad tables are produced at init by the package's own arithmetic rather
// than carried as 132-limb literal blocks. Every step is exact or fully
// extended-precision: factorials up to 35! are exact in four limbs and the
// reciprocals are one Quad division each. The k=1 sine converges to quad
// precision from its π/16 argument; the remaining table entries follow
// from the angle-addition identities. Initialization happens once, before
// any caller can observe the tables.

// quadInvFacts[i] is 1/(i+3)!.
var quadInvFacts [33]Quad

// sin(kπ/16) and cos(kπ/16) for k in [1, 4], as Quads.
var quadSines [4]Quad
var quadCosines [4]Quad

func init() {
	fact := QuadFromFloat64(2)
	for i := 0; i < len(quadInvFacts); i++ {
		fact = fact.MulFloat64(float64(i + 3))
		quadInvFacts[i] = QuadOne.Div(fact)
	}

	s1 := sinTaylorQuad(QuadPi16)
	c1 := QuadOne.Sub(s1.Sqr()).Sqrt()
	s2 := s1.Mul(c1).MulPwr2(2) // sin 2a = 2 sin a cos a
	c2 := QuadOne.Sub(s1.Sqr().MulPwr2(2))
	s3 := s2.Mul(c1).Add(c2.Mul(s1))
	c3 := c2.Mul(c1).Sub(s2.Mul(s1))
	s4 := s2.Mul(c2).MulPwr2(2)
	c4 := QuadOne.Sub(s2.Sqr().MulPwr2(2))

	quadSines = [4]Quad{s1, s2, s3, s4}
	quadCosines = [4]Quad{c1, c2, c3, c4}
}
