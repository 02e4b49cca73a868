// Package fixnum implements signed Q32.32 fixed-point arithmetic for the
// regime without native floating point. A Fixed is an int64 holding
// value * 2^32; products go through a wide intermediate so that the full
// 128-bit result exists before the rescaling shift.
//
// Domain precondition: operands whose real value lies outside roughly
// ±2^31 are out of contract. The layer does not check this at runtime;
// results for out-of-range operands are numerically wrong but never panic.
package fixnum

import "github.com/holiman/uint256"

// Fixed is a Q32.32 fixed-point number: an int64 interpreted as
// value * 2^-32.
type Fixed int64

const (
	// Shift is the number of fractional bits.
	Shift = 32

	// One is 1.0 in Q32.32.
	One Fixed = 1 << Shift

	// Half is 0.5 in Q32.32.
	Half Fixed = One >> 1

	// Quarter is 0.25 in Q32.32.
	Quarter Fixed = One >> 2
)

// Angle constants, rounded to the nearest representable Q32.32 value.
const (
	// Pi is pi in Q32.32 (3.14159265... * 2^32).
	Pi Fixed = 13493037705

	// TwoPi is 2*pi in Q32.32.
	TwoPi Fixed = 26986075409

	// HalfPi is pi/2 in Q32.32.
	HalfPi Fixed = 6746518852
)

// FromFloat converts a float64 to Q32.32, truncating toward zero.
func FromFloat(f float64) Fixed {
	return Fixed(f * float64(One))
}

// Float converts a Q32.32 value back to float64.
func (a Fixed) Float() float64 {
	return float64(a) / float64(One)
}

// Mul returns a*b in Q32.32. The product is formed on a 256-bit
// intermediate over the operand magnitudes and shifted right by 32, so no
// in-contract operand pair can overflow before the rescale. Truncation is
// toward zero.
func (a Fixed) Mul(b Fixed) Fixed {
	neg := (a < 0) != (b < 0)
	ua, ub := a, b
	if ua < 0 {
		ua = -ua
	}
	if ub < 0 {
		ub = -ub
	}

	var x, y uint256.Int
	x.SetUint64(uint64(ua))
	y.SetUint64(uint64(ub))
	x.Mul(&x, &y)
	x.Rsh(&x, Shift)

	r := Fixed(x.Uint64())
	if neg {
		r = -r
	}
	return r
}

// Square returns a*a in Q32.32.
func (a Fixed) Square() Fixed {
	return a.Mul(a)
}

// Abs returns the magnitude of a.
func (a Fixed) Abs() Fixed {
	if a < 0 {
		return -a
	}
	return a
}
