package gate

import "math"

// invSqrt2 is 1/sqrt(2), the Hadamard and sqrt-X scaling factor.
const invSqrt2 = 1 / math.Sqrt2

// Identity leaves the amplitude untouched and still emits its event.
func (e *Engine[C]) Identity(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	e.emit(OpIdentity, q, MsgApplied)
	return nil
}

// GlobalPhase multiplies the amplitude by exp(i*theta).
func (e *Engine[C]) GlobalPhase(q *Qubit[C], theta float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(theta))
	e.emit(OpGlobalPhase, q, MsgApplied)
	return nil
}

// PauliX conjugates the amplitude.
func (e *Engine[C]) PauliX(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Conj(q.Amp)
	e.emit(OpPauliX, q, MsgApplied)
	return nil
}

// PauliY multiplies the amplitude by i. The rotation is exact in both
// regimes; it never goes through the phasor approximation.
func (e *Engine[C]) PauliY(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.MulI(q.Amp)
	e.emit(OpPauliY, q, MsgApplied)
	return nil
}

// PauliZ negates the amplitude.
func (e *Engine[C]) PauliZ(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Neg(q.Amp)
	e.emit(OpPauliZ, q, MsgApplied)
	return nil
}

// PhaseS multiplies the amplitude by exp(i*pi/2). In the fixed regime the
// phasor is the Taylor approximation, so the result is close to but not
// exactly i.
func (e *Engine[C]) PhaseS(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(math.Pi/2))
	e.emit(OpPhaseS, q, MsgApplied)
	return nil
}

// SqrtX multiplies the amplitude by the unit constant (1+i)/sqrt(2).
func (e *Engine[C]) SqrtX(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.Complex(invSqrt2, invSqrt2))
	e.emit(OpSqrtX, q, MsgApplied)
	return nil
}

// Hadamard scales the amplitude by the real factor 1/sqrt(2).
func (e *Engine[C]) Hadamard(q *Qubit[C]) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Scale(q.Amp, invSqrt2)
	e.emit(OpHadamard, q, MsgApplied)
	return nil
}

// PhaseShift multiplies the amplitude by exp(i*theta).
func (e *Engine[C]) PhaseShift(q *Qubit[C], theta float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(theta))
	e.emit(OpPhaseShift, q, MsgApplied)
	return nil
}

// PhaseGate applies the same transform as PhaseShift under its own
// identifier.
func (e *Engine[C]) PhaseGate(q *Qubit[C], phi float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(phi))
	e.emit(OpPhaseGate, q, MsgApplied)
	return nil
}

// RotateX multiplies the amplitude by cos(theta/2) + i*sin(theta/2).
func (e *Engine[C]) RotateX(q *Qubit[C], theta float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(theta/2))
	e.emit(OpRotateX, q, MsgApplied)
	return nil
}

// RotateY multiplies the amplitude by cos(theta/2) + i*sin(theta/2), the
// same scalar transform as RotateX under its own identifier.
func (e *Engine[C]) RotateY(q *Qubit[C], theta float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(theta/2))
	e.emit(OpRotateY, q, MsgApplied)
	return nil
}

// RotateZ multiplies the amplitude by exp(i*theta).
func (e *Engine[C]) RotateZ(q *Qubit[C], theta float64) error {
	if q == nil {
		return ErrNilQubit
	}
	q.Amp = e.be.Mul(q.Amp, e.be.ExpI(theta))
	e.emit(OpRotateZ, q, MsgApplied)
	return nil
}
