package qmath

import "math"

// F64 is the floating regime: amplitudes are native complex128 values and
// every operation maps to hardware arithmetic.
type F64 struct{}

func (F64) Complex(re, im float64) complex128 { return complex(re, im) }

func (F64) Add(a, b complex128) complex128 { return a + b }

func (F64) Sub(a, b complex128) complex128 { return a - b }

func (F64) Mul(a, b complex128) complex128 { return a * b }

func (F64) Conj(a complex128) complex128 { return complex(real(a), -imag(a)) }

func (F64) Neg(a complex128) complex128 { return -a }

func (F64) MulI(a complex128) complex128 { return complex(-imag(a), real(a)) }

func (F64) Scale(a complex128, s float64) complex128 {
	return a * complex(s, 0)
}

func (F64) ExpI(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

func (F64) MagSqAbove(a complex128, threshold float64) bool {
	return real(a)*real(a)+imag(a)*imag(a) > threshold
}

func (F64) Re(a complex128) float64 { return real(a) }

func (F64) Im(a complex128) float64 { return imag(a) }
