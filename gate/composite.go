package gate

import "math"

// Composite gates: fixed, ordered sequences of the elementary and
// controlled primitives. Order matters because the sub-gates generally do
// not commute. The first sub-gate failure aborts the remaining sequence
// and propagates; amplitudes already mutated by earlier steps are not
// rolled back. There is deliberately no atomicity across a sequence.

// Oracle is a caller-supplied single-amplitude gate, the capability
// parameter of Deutsch. Implementations follow the same contract as the
// engine's own gates: mutate in place, return a plain error.
type Oracle[C any] func(q *Qubit[C]) error

// sequence runs the sub-gates in order, fail-fast, then emits the
// composite's own event against its primary amplitude.
func (e *Engine[C]) sequence(op Opcode, primary *Qubit[C], steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	e.emit(op, primary, MsgApplied)
	return nil
}

// Barenco runs H(c), CNOT(b,c), S(c), CNOT(a,c), H(c).
func (e *Engine[C]) Barenco(a, b, c *Qubit[C]) error {
	if anyNil(a, b, c) {
		return ErrNilQubit
	}
	return e.sequence(OpBarenco, c,
		func() error { return e.Hadamard(c) },
		func() error { return e.CNOT(b, c) },
		func() error { return e.PhaseS(c) },
		func() error { return e.CNOT(a, c) },
		func() error { return e.Hadamard(c) },
	)
}

// Magic runs H(a), S(a), CNOT(a,b), H(a).
func (e *Engine[C]) Magic(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	return e.sequence(OpMagic, a,
		func() error { return e.Hadamard(a) },
		func() error { return e.PhaseS(a) },
		func() error { return e.CNOT(a, b) },
		func() error { return e.Hadamard(a) },
	)
}

// Peres runs CNOT(a,c) then Margolis(a,b,c).
func (e *Engine[C]) Peres(a, b, c *Qubit[C]) error {
	if anyNil(a, b, c) {
		return ErrNilQubit
	}
	return e.sequence(OpPeres, c,
		func() error { return e.CNOT(a, c) },
		func() error { return e.Margolis(a, b, c) },
	)
}

// CZSwap runs CZ(a,b) then Swap(a,b).
func (e *Engine[C]) CZSwap(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	return e.sequence(OpCZSwap, a,
		func() error { return e.CZ(a, b) },
		func() error { return e.Swap(a, b) },
	)
}

// Sycamore runs SqrtISwap(a,b) then ControlledPhase(a,b,pi/6).
func (e *Engine[C]) Sycamore(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	return e.sequence(OpSycamore, a,
		func() error { return e.SqrtISwap(a, b) },
		func() error { return e.ControlledPhase(a, b, math.Pi/6) },
	)
}

// FermionSim runs Swap(a,b) then a sign flip on a.
func (e *Engine[C]) FermionSim(a, b *Qubit[C]) error {
	if anyNil(a, b) {
		return ErrNilQubit
	}
	return e.sequence(OpFermionSim, a,
		func() error { return e.Swap(a, b) },
		func() error { return e.PauliZ(a) },
	)
}

// Deutsch runs H(q1), oracle(q2), H(q1). The oracle is the caller's
// single-amplitude gate; passing nil is an invalid reference.
func (e *Engine[C]) Deutsch(q1, q2 *Qubit[C], oracle Oracle[C]) error {
	if anyNil(q1, q2) {
		return ErrNilQubit
	}
	if oracle == nil {
		return ErrNilOracle
	}
	return e.sequence(OpDeutsch, q1,
		func() error { return e.Hadamard(q1) },
		func() error { return oracle(q2) },
		func() error { return e.Hadamard(q1) },
	)
}
