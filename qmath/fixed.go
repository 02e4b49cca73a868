package qmath

import "github.com/qsymlib/qsym/fixnum"

// FixedComplex is a complex amplitude in the fixed regime: a pair of
// Q32.32 scalars.
type FixedComplex struct {
	Re fixnum.Fixed
	Im fixnum.Fixed
}

// Q32 is the fixed regime. Construction and the scalar parameters of the
// trait cross from float64 once at the boundary; everything past that
// point stays in Q32.32 integer arithmetic.
type Q32 struct{}

func (Q32) Complex(re, im float64) FixedComplex {
	return FixedComplex{Re: fixnum.FromFloat(re), Im: fixnum.FromFloat(im)}
}

func (Q32) Add(a, b FixedComplex) FixedComplex {
	return FixedComplex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (Q32) Sub(a, b FixedComplex) FixedComplex {
	return FixedComplex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

func (Q32) Mul(a, b FixedComplex) FixedComplex {
	return FixedComplex{
		Re: a.Re.Mul(b.Re) - a.Im.Mul(b.Im),
		Im: a.Re.Mul(b.Im) + a.Im.Mul(b.Re),
	}
}

func (Q32) Conj(a FixedComplex) FixedComplex {
	return FixedComplex{Re: a.Re, Im: -a.Im}
}

func (Q32) Neg(a FixedComplex) FixedComplex {
	return FixedComplex{Re: -a.Re, Im: -a.Im}
}

func (Q32) MulI(a FixedComplex) FixedComplex {
	return FixedComplex{Re: -a.Im, Im: a.Re}
}

func (Q32) Scale(a FixedComplex, s float64) FixedComplex {
	f := fixnum.FromFloat(s)
	return FixedComplex{Re: a.Re.Mul(f), Im: a.Im.Mul(f)}
}

func (Q32) ExpI(theta float64) FixedComplex {
	sin, cos := fixnum.SinCos(fixnum.FromFloat(theta))
	return FixedComplex{Re: cos, Im: sin}
}

func (Q32) MagSqAbove(a FixedComplex, threshold float64) bool {
	return a.Re.Square()+a.Im.Square() > fixnum.FromFloat(threshold)
}

func (Q32) Re(a FixedComplex) float64 { return a.Re.Float() }

func (Q32) Im(a FixedComplex) float64 { return a.Im.Float() }
