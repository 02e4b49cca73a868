// Package qmath provides the complex-amplitude arithmetic behind the gate
// engine in two interchangeable regimes: native complex128 floating point,
// and Q32.32 fixed point for hosts without floating-point hardware. Gate
// code is written once against the Backend trait and instantiated with
// whichever regime is active.
package qmath

// Backend is the arithmetic regime for complex amplitudes. C is the
// concrete amplitude representation of the regime. All operations are
// total over the fixnum domain precondition; out-of-range operands are
// undefined rather than checked.
type Backend[C any] interface {
	// Complex constructs an amplitude from real and imaginary parts.
	Complex(re, im float64) C

	// Add returns a+b.
	Add(a, b C) C

	// Sub returns a-b.
	Sub(a, b C) C

	// Mul returns the complex product
	// (a.re*b.re - a.im*b.im, a.re*b.im + a.im*b.re).
	Mul(a, b C) C

	// Conj negates the imaginary part only.
	Conj(a C) C

	// Neg returns -a.
	Neg(a C) C

	// MulI returns i*a exactly: (re, im) -> (-im, re).
	MulI(a C) C

	// Scale returns s*a for a real factor s.
	Scale(a C, s float64) C

	// ExpI returns the unit phasor cos(theta) + i*sin(theta). Exact in
	// the floating regime; range reduction plus truncated Taylor series
	// in the fixed regime.
	ExpI(theta float64) C

	// MagSqAbove reports whether |a|^2 > threshold, strictly. The squared
	// magnitude is formed without a square root.
	MagSqAbove(a C, threshold float64) bool

	// Re extracts the real part as a float64, for display and tests.
	Re(a C) float64

	// Im extracts the imaginary part as a float64.
	Im(a C) float64
}
