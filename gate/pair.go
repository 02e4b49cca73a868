package gate

import "math"

// Two-amplitude gates. Both operands are mutated before the call returns;
// the engine is not re-entrant mid-gate, so from the caller's point of
// view the pair changes atomically.

// Swap exchanges the two amplitudes.
func (e *Engine[C]) Swap(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	a.Amp, b.Amp = b.Amp, a.Amp
	e.emit(OpSwap, a, MsgApplied)
	return nil
}

// ISwap exchanges the two amplitudes, each multiplied by i first.
func (e *Engine[C]) ISwap(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	a.Amp, b.Amp = e.be.MulI(b.Amp), e.be.MulI(a.Amp)
	e.emit(OpISwap, a, MsgApplied)
	return nil
}

// SqrtSwap applies the constant matrix
//
//	| (1+i)/2  (1-i)/2 |
//	| (1-i)/2  (1+i)/2 |
//
// to the amplitude pair.
func (e *Engine[C]) SqrtSwap(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	p := e.be.Complex(0.5, 0.5)
	m := e.be.Complex(0.5, -0.5)
	na := e.be.Add(e.be.Mul(p, a.Amp), e.be.Mul(m, b.Amp))
	nb := e.be.Add(e.be.Mul(m, a.Amp), e.be.Mul(p, b.Amp))
	a.Amp, b.Amp = na, nb
	e.emit(OpSqrtSwap, a, MsgApplied)
	return nil
}

// SqrtISwap applies the constant matrix
//
//	| 1/sqrt2    i/sqrt2 |
//	| i/sqrt2    1/sqrt2 |
//
// to the amplitude pair.
func (e *Engine[C]) SqrtISwap(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	c := e.be.Complex(invSqrt2, 0)
	s := e.be.Complex(0, invSqrt2)
	na := e.be.Add(e.be.Mul(c, a.Amp), e.be.Mul(s, b.Amp))
	nb := e.be.Add(e.be.Mul(s, a.Amp), e.be.Mul(c, b.Amp))
	a.Amp, b.Amp = na, nb
	e.emit(OpSqrtISwap, a, MsgApplied)
	return nil
}

// SwapPow applies the fractional swap
//
//	| (1+e^(i*pi*alpha))/2  (1-e^(i*pi*alpha))/2 |
//	| (1-e^(i*pi*alpha))/2  (1+e^(i*pi*alpha))/2 |
//
// so alpha=1 recovers Swap and alpha=0.5 recovers SqrtSwap up to the
// regime's phasor accuracy.
func (e *Engine[C]) SwapPow(a, b *Qubit[C], alpha float64) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	one := e.be.Complex(1, 0)
	ph := e.be.ExpI(math.Pi * alpha)
	p := e.be.Scale(e.be.Add(one, ph), 0.5)
	m := e.be.Scale(e.be.Sub(one, ph), 0.5)
	na := e.be.Add(e.be.Mul(p, a.Amp), e.be.Mul(m, b.Amp))
	nb := e.be.Add(e.be.Mul(m, a.Amp), e.be.Mul(p, b.Amp))
	a.Amp, b.Amp = na, nb
	e.emit(OpSwapPow, a, MsgApplied)
	return nil
}

// Givens applies the real rotation
//
//	| cos(theta)  -sin(theta) |
//	| sin(theta)   cos(theta) |
//
// with cos and sin recovered in-regime from the phasor: for u=exp(i*theta),
// cos = (u + conj(u))/2 and i*sin = (u - conj(u))/2.
func (e *Engine[C]) Givens(a, b *Qubit[C], theta float64) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	u := e.be.ExpI(theta)
	cos := e.be.Scale(e.be.Add(u, e.be.Conj(u)), 0.5)
	sin := e.be.Neg(e.be.MulI(e.be.Scale(e.be.Sub(u, e.be.Conj(u)), 0.5)))
	na := e.be.Sub(e.be.Mul(cos, a.Amp), e.be.Mul(sin, b.Amp))
	nb := e.be.Add(e.be.Mul(sin, a.Amp), e.be.Mul(cos, b.Amp))
	a.Amp, b.Amp = na, nb
	e.emit(OpGivens, a, MsgApplied)
	return nil
}
