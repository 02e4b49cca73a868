package fixnum

// Taylor-series sine and cosine for the fixed regime. Angles are range
// reduced into [-pi, pi] and the truncated series evaluated entirely in
// Q32.32:
//
//	sin x = x - x^3/6 + x^5/120 - x^7/5040
//	cos x = 1 - x^2/2 + x^4/24  - x^6/720
//
// The truncation error is bounded by the first dropped term: below about
// 2.5e-4 for |x| <= pi/2, and up to x^8/8! (about 0.24 for cosine) at
// |x| = pi. Callers that need the tight bound reduce around the origin.

// Reciprocal factorials in Q32.32, truncated.
const (
	inv2    Fixed = One / 2
	inv6    Fixed = One / 6
	inv24   Fixed = One / 24
	inv120  Fixed = One / 120
	inv720  Fixed = One / 720
	inv5040 Fixed = One / 5040
)

// Reduce maps an angle into [-pi, pi] by repeated addition or subtraction
// of 2*pi.
func Reduce(theta Fixed) Fixed {
	for theta > Pi {
		theta -= TwoPi
	}
	for theta < -Pi {
		theta += TwoPi
	}
	return theta
}

// Sin returns sin(x) for x in [-pi, pi] via the odd Taylor polynomial up
// to x^7. Powers are built incrementally from x^2 so the series costs six
// wide multiplies.
func Sin(x Fixed) Fixed {
	x2 := x.Mul(x)
	x3 := x2.Mul(x)
	x5 := x3.Mul(x2)
	x7 := x5.Mul(x2)
	return x - x3.Mul(inv6) + x5.Mul(inv120) - x7.Mul(inv5040)
}

// Cos returns cos(x) for x in [-pi, pi] via the even Taylor polynomial up
// to x^6.
func Cos(x Fixed) Fixed {
	x2 := x.Mul(x)
	x4 := x2.Mul(x2)
	x6 := x4.Mul(x2)
	return One - x2.Mul(inv2) + x4.Mul(inv24) - x6.Mul(inv720)
}

// SinCos returns sin(theta) and cos(theta) for an arbitrary angle,
// reducing first and sharing the incremental power chain between the two
// polynomials.
func SinCos(theta Fixed) (sin, cos Fixed) {
	x := Reduce(theta)

	x2 := x.Mul(x)
	x3 := x2.Mul(x)
	x4 := x3.Mul(x)
	x5 := x4.Mul(x)
	x6 := x5.Mul(x)
	x7 := x6.Mul(x)

	sin = x - x3.Mul(inv6) + x5.Mul(inv120) - x7.Mul(inv5040)
	cos = One - x2.Mul(inv2) + x4.Mul(inv24) - x6.Mul(inv720)
	return sin, cos
}
