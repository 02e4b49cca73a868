package gate

// Controlled gates. The control test is the shared magnitude-squared
// predicate (|control|^2 > ControlThreshold, strict); it stands in for
// projective measurement and is a heuristic, not physics. A control that
// tests off leaves the targets untouched, emits MsgControlOff and still
// returns success.

// CNOT flips the sign of the target amplitude when the control is on.
func (e *Engine[C]) CNOT(control, target *Qubit[C]) error {
	if anyNil(control, target) {
		return ErrNilQubit
	}
	if !e.isOn(control) {
		e.emit(OpCNOT, target, MsgControlOff)
		return nil
	}
	target.Amp = e.be.Neg(target.Amp)
	e.emit(OpCNOT, target, MsgApplied)
	return nil
}

// CZ flips the sign of the target amplitude when the control is on. On
// independent scalar amplitudes the controlled-Z action coincides with
// CNOT; the gates stay separate identifiers for the dispatcher.
func (e *Engine[C]) CZ(control, target *Qubit[C]) error {
	if anyNil(control, target) {
		return ErrNilQubit
	}
	if !e.isOn(control) {
		e.emit(OpCZ, target, MsgControlOff)
		return nil
	}
	target.Amp = e.be.Neg(target.Amp)
	e.emit(OpCZ, target, MsgApplied)
	return nil
}

// CCNOT flips the sign of the target amplitude when both controls are on.
func (e *Engine[C]) CCNOT(c1, c2, target *Qubit[C]) error {
	if anyNil(c1, c2, target) {
		return ErrNilQubit
	}
	if !e.isOn(c1) || !e.isOn(c2) {
		e.emit(OpCCNOT, target, MsgControlOff)
		return nil
	}
	target.Amp = e.be.Neg(target.Amp)
	e.emit(OpCCNOT, target, MsgApplied)
	return nil
}

// ControlledPhase multiplies the target by exp(i*theta) when the control
// is on.
func (e *Engine[C]) ControlledPhase(control, target *Qubit[C], theta float64) error {
	if anyNil(control, target) {
		return ErrNilQubit
	}
	if !e.isOn(control) {
		e.emit(OpControlledPhase, target, MsgControlOff)
		return nil
	}
	target.Amp = e.be.Mul(target.Amp, e.be.ExpI(theta))
	e.emit(OpControlledPhase, target, MsgApplied)
	return nil
}

// Margolis is the simplified Toffoli: both controls on flips the sign of
// the target, under its own identifier so dispatchers can route it to
// cheaper hardware decompositions.
func (e *Engine[C]) Margolis(c1, c2, target *Qubit[C]) error {
	if anyNil(c1, c2, target) {
		return ErrNilQubit
	}
	if !e.isOn(c1) || !e.isOn(c2) {
		e.emit(OpMargolis, target, MsgControlOff)
		return nil
	}
	target.Amp = e.be.Neg(target.Amp)
	e.emit(OpMargolis, target, MsgApplied)
	return nil
}

// Fredkin swaps the two target amplitudes when the control is on.
func (e *Engine[C]) Fredkin(control, a, b *Qubit[C]) error {
	if anyNil(control, a, b) {
		return ErrNilQubit
	}
	if !e.isOn(control) {
		e.emit(OpFredkin, a, MsgControlOff)
		return nil
	}
	a.Amp, b.Amp = b.Amp, a.Amp
	e.emit(OpFredkin, a, MsgApplied)
	return nil
}

// ControlledFredkin swaps the two target amplitudes when both controls
// are on.
func (e *Engine[C]) ControlledFredkin(c1, c2, a, b *Qubit[C]) error {
	if anyNil(c1, c2, a, b) {
		return ErrNilQubit
	}
	if !e.isOn(c1) || !e.isOn(c2) {
		e.emit(OpControlledFredkin, a, MsgControlOff)
		return nil
	}
	a.Amp, b.Amp = b.Amp, a.Amp
	e.emit(OpControlledFredkin, a, MsgApplied)
	return nil
}
